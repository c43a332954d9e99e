package visacheckout

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentSummary is the payload Visa Checkout hands back on success.
type PaymentSummary struct {
	CallID                 string             `json:"callid"`
	EncryptedKey           string             `json:"encKey"`
	EncryptedPaymentData   string             `json:"encPaymentData"`
	PartialShippingAddress *PartialAddress    `json:"partialShippingAddress,omitempty"`
	PaymentInstrument      *PaymentInstrument `json:"paymentInstrument,omitempty"`
	PaymentRequest         *SummaryRequest    `json:"paymentRequest,omitempty"`
}

type PartialAddress struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

type PaymentInstrument struct {
	LastFourDigits string `json:"lastFourDigits"`
	CardBrand      string `json:"cardBrand"`
	CardType       string `json:"cardType"`
}

type SummaryRequest struct {
	CurrencyCode string          `json:"currencyCode"`
	Total        decimal.Decimal `json:"total"`
}

// DecodeSummary decodes the opaque result payload once.
//
// A payload without the encrypted fields is not a summary.
func DecodeSummary(payload []byte) (*PaymentSummary, error) {
	if len(payload) == 0 {
		return nil, ErrMissingSummary
	}

	result := &PaymentSummary{}
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSummary, err)
	}

	if result.EncryptedPaymentData == "" || result.EncryptedKey == "" || result.CallID == "" {
		return nil, ErrMissingSummary
	}

	return result, nil
}
