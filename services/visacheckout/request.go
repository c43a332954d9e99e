package visacheckout

import (
	_ "github.com/brave-intl/visacheckout/libs/validators"
	"github.com/shopspring/decimal"
)

const (
	DataLevelSummary DataLevel = "SUMMARY"
	DataLevelFull    DataLevel = "FULL"
	DataLevelNone    DataLevel = "NONE"
)

type DataLevel string

type MerchantInfo struct {
	APIKey             string    `json:"apiKey,omitempty"`
	DataLevel          DataLevel `json:"dataLevel,omitempty" valid:"in(SUMMARY|FULL|NONE),optional"`
	DisplayName        string    `json:"displayName,omitempty" valid:"runelength(0|100),optional"`
	MerchantID         string    `json:"merchantId,omitempty"`
	Locale             string    `json:"locale,omitempty"`
	AcceptedCardBrands []string  `json:"acceptedCardBrands,omitempty" valid:"cardbrand,optional"`
}

type UserInfo struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty" valid:"email,optional"`
	MobileNumber string `json:"mobileNumber,omitempty" valid:"numeric,optional"`
	CountryCode  string `json:"countryCode,omitempty" valid:"ISO3166Alpha2,optional"`
}

// PaymentRequest is created per checkout attempt and discarded once staged.
type PaymentRequest struct {
	MerchantInfo     *MerchantInfo   `json:"merchantInfo,omitempty"`
	UserInfo         *UserInfo       `json:"userInfo,omitempty"`
	ExternalClientID string          `json:"externalClientId,omitempty"`
	Description      string          `json:"description,omitempty" valid:"runelength(0|255),optional"`
	OrderID          string          `json:"orderId,omitempty"`
	CurrencyCode     string          `json:"currencyCode" valid:"ISO4217"`
	Total            decimal.Decimal `json:"total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// Merge fills the request from the merchant configuration.
//
// The api key and external client id are only set when the caller left them empty.
// The data level is always forced to FULL, merchants cannot opt out of it.
func Merge(req *PaymentRequest, cfg *Configuration) *PaymentRequest {
	if req == nil {
		req = &PaymentRequest{}
	}

	if req.MerchantInfo == nil {
		req.MerchantInfo = &MerchantInfo{}
	}

	if cfg != nil {
		if req.MerchantInfo.APIKey == "" {
			req.MerchantInfo.APIKey = cfg.VisaCheckout.APIKey
		}

		if req.ExternalClientID == "" {
			req.ExternalClientID = cfg.VisaCheckout.ExternalClientID
		}

		if len(req.MerchantInfo.AcceptedCardBrands) == 0 {
			req.MerchantInfo.AcceptedCardBrands = cfg.VisaCheckout.AcceptedCardBrands()
		}
	}

	req.MerchantInfo.DataLevel = DataLevelFull

	return req
}
