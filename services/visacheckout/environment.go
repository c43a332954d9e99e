package visacheckout

import "context"

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

const (
	sandboxSDKURL    = "https://sandbox-assets.secure.checkout.visa.com/checkout-widget/resources/js/integration/v1/sdk.js"
	productionSDKURL = "https://assets.secure.checkout.visa.com/checkout-widget/resources/js/integration/v1/sdk.js"
)

type Environment string

// EnvironmentConfig is what the Visa Checkout library needs to start a checkout.
type EnvironmentConfig struct {
	Environment        Environment `json:"environment"`
	MerchantAPIKey     string      `json:"apiKey"`
	RequestCode        int         `json:"requestCode"`
	AcceptedCardBrands []string    `json:"acceptedCardBrands,omitempty"`
}

// Library is the handle to a loaded Visa Checkout library.
type Library struct {
	SDKURL      string            `json:"sdkUrl"`
	Environment EnvironmentConfig `json:"environment"`
}

// LibraryLoader abstracts the vendor library so it can be replaced in tests.
//
// Load may return a nil Library without an error, the caller still reports it.
type LibraryLoader interface {
	Available() bool
	Load(ctx context.Context, env EnvironmentConfig) (*Library, error)
}

// Resolve derives the library environment from the merchant configuration.
//
// The feature flag is checked before the loader is touched.
func Resolve(cfg *Configuration, loader LibraryLoader) (EnvironmentConfig, error) {
	if cfg == nil || !cfg.VisaCheckout.IsEnabled() {
		return EnvironmentConfig{}, &ConfigurationError{Reason: msgNotEnabled}
	}

	if loader == nil || !loader.Available() {
		return EnvironmentConfig{}, &ConfigurationError{Reason: msgSDKUnavailable}
	}

	env := EnvironmentSandbox
	if cfg.IsProduction() {
		env = EnvironmentProduction
	}

	result := EnvironmentConfig{
		Environment:        env,
		MerchantAPIKey:     cfg.VisaCheckout.APIKey,
		RequestCode:        RequestCode,
		AcceptedCardBrands: cfg.VisaCheckout.AcceptedCardBrands(),
	}

	return result, nil
}

// StaticLoader hands out the hosted SDK location for the resolved environment.
// An empty URL for an environment yields a nil Library.
type StaticLoader struct {
	SandboxURL    string
	ProductionURL string
}

func NewStaticLoader() *StaticLoader {
	return &StaticLoader{SandboxURL: sandboxSDKURL, ProductionURL: productionSDKURL}
}

func (l *StaticLoader) Available() bool {
	return l != nil && (l.SandboxURL != "" || l.ProductionURL != "")
}

func (l *StaticLoader) Load(_ context.Context, env EnvironmentConfig) (*Library, error) {
	url := l.SandboxURL
	if env.Environment == EnvironmentProduction {
		url = l.ProductionURL
	}

	if url == "" {
		return nil, nil
	}

	return &Library{SDKURL: url, Environment: env}, nil
}
