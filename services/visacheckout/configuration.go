package visacheckout

import (
	"context"
	"encoding/json"
	"fmt"
)

// ConfigurationFetcher supplies the merchant configuration for the current session.
type ConfigurationFetcher interface {
	Configuration(ctx context.Context) (*Configuration, error)
}

// Configuration is the subset of the gateway client configuration the relay reads.
type Configuration struct {
	Environment  string                    `json:"environment"`
	MerchantID   string                    `json:"merchantId"`
	ClientAPIURL string                    `json:"clientApiUrl"`
	Analytics    AnalyticsConfiguration    `json:"analytics"`
	VisaCheckout VisaCheckoutConfiguration `json:"visaCheckout"`
}

func ConfigurationFromJSON(b []byte) (*Configuration, error) {
	result := &Configuration{}
	if err := json.Unmarshal(b, result); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return result, nil
}

func (c *Configuration) IsProduction() bool {
	return c.Environment == string(EnvironmentProduction)
}

type AnalyticsConfiguration struct {
	URL string `json:"url"`
}

func (a AnalyticsConfiguration) IsEnabled() bool {
	return a.URL != ""
}

type VisaCheckoutConfiguration struct {
	APIKey             string   `json:"apikey"`
	ExternalClientID   string   `json:"externalClientId"`
	SupportedCardTypes []string `json:"supportedCardTypes"`
}

// IsEnabled is the feature flag, the gateway only sends an api key to merchants
// with Visa Checkout turned on.
func (v VisaCheckoutConfiguration) IsEnabled() bool {
	return v.APIKey != ""
}

var cardBrands = map[string]string{
	"Visa":             "VISA",
	"MasterCard":       "MASTERCARD",
	"Discover":         "DISCOVER",
	"American Express": "AMEX",
}

// AcceptedCardBrands maps the gateway card type names to Visa Checkout brands.
// Unknown names are dropped.
func (v VisaCheckoutConfiguration) AcceptedCardBrands() []string {
	result := make([]string, 0, len(v.SupportedCardTypes))
	for _, ct := range v.SupportedCardTypes {
		if brand, ok := cardBrands[ct]; ok {
			result = append(result, brand)
		}
	}

	return result
}
