package visacheckout

import (
	"context"
	"errors"
	"testing"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

type countingLoader struct {
	available bool
	calls     int
}

func (l *countingLoader) Available() bool {
	l.calls++
	return l.available
}

func (l *countingLoader) Load(_ context.Context, env EnvironmentConfig) (*Library, error) {
	l.calls++
	return &Library{Environment: env}, nil
}

func TestResolve(t *testing.T) {
	type tcGiven struct {
		cfg       *Configuration
		available bool
	}

	type tcExpected struct {
		env         EnvironmentConfig
		err         string
		loaderCalls int
	}

	type testCase struct {
		name  string
		given tcGiven
		exp   tcExpected
	}

	enabled := VisaCheckoutConfiguration{
		APIKey:             "gwApikey",
		ExternalClientID:   "gwExternalClientId",
		SupportedCardTypes: []string{"Visa"},
	}

	tests := []testCase{
		{
			name:  "nil_configuration",
			given: tcGiven{available: true},
			exp:   tcExpected{err: "Visa Checkout is not enabled."},
		},

		{
			name: "disabled_before_loader",
			given: tcGiven{
				cfg:       &Configuration{Environment: "production"},
				available: true,
			},
			exp: tcExpected{err: "Visa Checkout is not enabled."},
		},

		{
			name: "sdk_unavailable",
			given: tcGiven{
				cfg: &Configuration{Environment: "sandbox", VisaCheckout: enabled},
			},
			exp: tcExpected{err: "Visa Checkout SDK is not available", loaderCalls: 1},
		},

		{
			name: "production",
			given: tcGiven{
				cfg:       &Configuration{Environment: "production", VisaCheckout: enabled},
				available: true,
			},
			exp: tcExpected{
				env: EnvironmentConfig{
					Environment:        EnvironmentProduction,
					MerchantAPIKey:     "gwApikey",
					RequestCode:        RequestCode,
					AcceptedCardBrands: []string{"VISA"},
				},
				loaderCalls: 1,
			},
		},

		{
			name: "sandbox",
			given: tcGiven{
				cfg:       &Configuration{Environment: "sandbox", VisaCheckout: enabled},
				available: true,
			},
			exp: tcExpected{
				env: EnvironmentConfig{
					Environment:        EnvironmentSandbox,
					MerchantAPIKey:     "gwApikey",
					RequestCode:        RequestCode,
					AcceptedCardBrands: []string{"VISA"},
				},
				loaderCalls: 1,
			},
		},

		{
			name: "absent_environment",
			given: tcGiven{
				cfg:       &Configuration{VisaCheckout: enabled},
				available: true,
			},
			exp: tcExpected{
				env: EnvironmentConfig{
					Environment:        EnvironmentSandbox,
					MerchantAPIKey:     "gwApikey",
					RequestCode:        RequestCode,
					AcceptedCardBrands: []string{"VISA"},
				},
				loaderCalls: 1,
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			loader := &countingLoader{available: tc.given.available}

			actual, err := Resolve(tc.given.cfg, loader)
			should.Equal(t, tc.exp.loaderCalls, loader.calls)

			if tc.exp.err != "" {
				must.Error(t, err)
				should.Equal(t, tc.exp.err, err.Error())

				var cerr *ConfigurationError
				should.True(t, errors.As(err, &cerr))
				return
			}

			must.NoError(t, err)
			should.Equal(t, tc.exp.env, actual)
		})
	}
}

func TestStaticLoader_Load(t *testing.T) {
	loader := NewStaticLoader()
	must.True(t, loader.Available())

	lib, err := loader.Load(context.Background(), EnvironmentConfig{Environment: EnvironmentProduction})
	must.NoError(t, err)
	should.Equal(t, productionSDKURL, lib.SDKURL)

	lib, err = loader.Load(context.Background(), EnvironmentConfig{Environment: EnvironmentSandbox})
	must.NoError(t, err)
	should.Equal(t, sandboxSDKURL, lib.SDKURL)

	partial := &StaticLoader{SandboxURL: sandboxSDKURL}
	lib, err = partial.Load(context.Background(), EnvironmentConfig{Environment: EnvironmentProduction})
	must.NoError(t, err)
	should.Nil(t, lib)

	var empty *StaticLoader
	should.False(t, empty.Available())
}
