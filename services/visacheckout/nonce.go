package visacheckout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Tokenizer exchanges the encrypted payment data for a nonce.
//
// Tokenize blocks until the gateway answers. Timeouts and retries belong to the implementation.
type Tokenizer interface {
	Tokenize(ctx context.Context, req *TokenizeRequest) (*Nonce, error)
}

// Nonce is a single use token for a tokenized Visa Checkout card.
type Nonce struct {
	Nonce           string      `json:"nonce"`
	Description     string      `json:"description"`
	Default         bool        `json:"default"`
	Details         CardDetails `json:"details"`
	BillingAddress  *Address    `json:"billingAddress,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty"`
	UserData        *UserData   `json:"userData,omitempty"`
	CallID          string      `json:"callId"`
	BinData         *BinData    `json:"binData,omitempty"`
}

type CardDetails struct {
	CardType string `json:"cardType"`
	LastTwo  string `json:"lastTwo"`
}

type Address struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	StreetAddress   string `json:"streetAddress"`
	ExtendedAddress string `json:"extendedAddress"`
	Locality        string `json:"locality"`
	Region          string `json:"region"`
	PostalCode      string `json:"postalCode"`
	CountryCode     string `json:"countryCode"`
	PhoneNumber     string `json:"phoneNumber"`
}

type UserData struct {
	FirstName string `json:"userFirstName"`
	LastName  string `json:"userLastName"`
	FullName  string `json:"userFullName"`
	Username  string `json:"userName"`
	Email     string `json:"userEmail"`
}

type BinData struct {
	Prepaid           string `json:"prepaid"`
	Healthcare        string `json:"healthcare"`
	Debit             string `json:"debit"`
	DurbinRegulated   string `json:"durbinRegulated"`
	Commercial        string `json:"commercial"`
	Payroll           string `json:"payroll"`
	IssuingBank       string `json:"issuingBank"`
	CountryOfIssuance string `json:"countryOfIssuance"`
	ProductID         string `json:"productId"`
}

// NonceFromJSON reads the first card of a tokenization response.
func NonceFromJSON(b []byte) (*Nonce, error) {
	var resp struct {
		Cards []Nonce `json:"visaCheckoutCards"`
	}

	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode tokenization response: %w", err)
	}

	if len(resp.Cards) == 0 || resp.Cards[0].Nonce == "" {
		return nil, errors.New("tokenization response carries no visa checkout card")
	}

	return &resp.Cards[0], nil
}
