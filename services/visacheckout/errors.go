package visacheckout

import "fmt"

const (
	ErrFlowInProgress     = Error("visacheckout: flow already in progress")
	ErrResultDelivered    = Error("visacheckout: result already delivered")
	ErrNothingStaged      = Error("visacheckout: nothing staged")
	ErrUnknownRequestCode = Error("visacheckout: result carries an unknown request code")
	ErrMissingSummary     = Error("Visa Checkout returned no payment summary")
	ErrInvalidSessionID   = Error("visacheckout: invalid session id")
)

const (
	msgNotEnabled     = "Visa Checkout is not enabled."
	msgSDKUnavailable = "Visa Checkout SDK is not available"
)

type Error string

func (e Error) Error() string {
	return string(e)
}

// ConflictError reports sentinels raised by a request racing or replaying an earlier one.
func (e Error) ConflictError() bool {
	return e == ErrFlowInProgress || e == ErrResultDelivered
}

// NotFoundError reports sentinels raised when staged state is absent.
func (e Error) NotFoundError() bool {
	return e == ErrNothingStaged
}

// ConfigurationError is returned when the merchant configuration or the platform
// does not allow Visa Checkout. It is never retried.
type ConfigurationError struct {
	Reason string
	Cause  error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// ExternalFlowError is returned when the external flow finishes with neither ok nor canceled.
type ExternalFlowError struct {
	Code ResultCode
}

func (e *ExternalFlowError) Error() string {
	return fmt.Sprintf("Visa Checkout responded with resultCode=%d", e.Code)
}

// TokenizationError carries the failure of the gateway tokenization call.
type TokenizationError struct {
	Cause error
}

func (e *TokenizationError) Error() string {
	if e.Cause == nil {
		return "tokenization failed"
	}
	return e.Cause.Error()
}

func (e *TokenizationError) Unwrap() error {
	return e.Cause
}

func (e *TokenizationError) UpstreamError() bool {
	return true
}
