package visacheckout

import (
	"testing"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
	should "github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	type tcGiven struct {
		req *PaymentRequest
		cfg *Configuration
	}

	type tcExpected struct {
		apiKey           string
		externalClientID string
		description      string
		user             *UserInfo
	}

	type testCase struct {
		name  string
		given tcGiven
		exp   tcExpected
	}

	cfg := &Configuration{
		VisaCheckout: VisaCheckoutConfiguration{
			APIKey:           "gwApikey",
			ExternalClientID: "gwExternalClientId",
		},
	}

	tests := []testCase{
		{
			name:  "nil_request",
			given: tcGiven{cfg: cfg},
			exp: tcExpected{
				apiKey:           "gwApikey",
				externalClientID: "gwExternalClientId",
			},
		},

		{
			name: "defaults_filled",
			given: tcGiven{
				req: &PaymentRequest{
					MerchantInfo: &MerchantInfo{DataLevel: DataLevelSummary},
					Description:  "description",
					UserInfo:     &UserInfo{FirstName: "first"},
				},
				cfg: cfg,
			},
			exp: tcExpected{
				apiKey:           "gwApikey",
				externalClientID: "gwExternalClientId",
				description:      "description",
				user:             &UserInfo{FirstName: "first"},
			},
		},

		{
			name: "caller_values_kept",
			given: tcGiven{
				req: &PaymentRequest{
					MerchantInfo:     &MerchantInfo{APIKey: "merchantApiKey", DataLevel: DataLevelNone},
					ExternalClientID: "merchantExternalClientId",
				},
				cfg: cfg,
			},
			exp: tcExpected{
				apiKey:           "merchantApiKey",
				externalClientID: "merchantExternalClientId",
			},
		},

		{
			name: "no_configuration",
			given: tcGiven{
				req: &PaymentRequest{MerchantInfo: &MerchantInfo{DataLevel: DataLevelSummary}},
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual := Merge(tc.given.req, tc.given.cfg)

			should.Equal(t, tc.exp.apiKey, actual.MerchantInfo.APIKey)
			should.Equal(t, tc.exp.externalClientID, actual.ExternalClientID)
			should.Equal(t, DataLevelFull, actual.MerchantInfo.DataLevel)
			should.Equal(t, tc.exp.description, actual.Description)
			should.Equal(t, tc.exp.user, actual.UserInfo)
		})
	}
}

func TestPaymentRequest_Validation(t *testing.T) {
	type testCase struct {
		name  string
		given PaymentRequest
		valid bool
	}

	tests := []testCase{
		{
			name: "valid",
			given: PaymentRequest{
				MerchantInfo: &MerchantInfo{DataLevel: DataLevelSummary, AcceptedCardBrands: []string{"VISA", "AMEX"}},
				UserInfo:     &UserInfo{Email: "user@example.com", CountryCode: "US"},
				CurrencyCode: "USD",
				Total:        decimal.RequireFromString("10.00"),
			},
			valid: true,
		},
		{
			name:  "missing_currency",
			given: PaymentRequest{Total: decimal.RequireFromString("10.00")},
		},
		{
			name: "unknown_card_brand",
			given: PaymentRequest{
				MerchantInfo: &MerchantInfo{AcceptedCardBrands: []string{"Visa"}},
				CurrencyCode: "USD",
			},
		},
		{
			name: "unknown_data_level",
			given: PaymentRequest{
				MerchantInfo: &MerchantInfo{DataLevel: "PARTIAL"},
				CurrencyCode: "USD",
			},
		},
		{
			name: "invalid_email",
			given: PaymentRequest{
				UserInfo:     &UserInfo{Email: "user"},
				CurrencyCode: "USD",
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			_, err := govalidator.ValidateStruct(tc.given)
			should.Equal(t, tc.valid, err == nil, err)
		})
	}
}
