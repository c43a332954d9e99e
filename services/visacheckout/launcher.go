package visacheckout

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

// RequestCode is reserved for Visa Checkout, it correlates a launch with its result.
const RequestCode = 13654

const (
	ResultOK       ResultCode = -1
	ResultCanceled ResultCode = 0
)

// ResultCode is the outcome reported by the external flow. Anything other than
// ResultOK and ResultCanceled is a failure.
type ResultCode int

// Result is what the external flow reports back.
//
// RequestCode is optional, when set it must match RequestCode.
type Result struct {
	RequestCode int
	Code        ResultCode
	Payload     []byte
}

// Launcher starts the external flow for a session.
//
// Implementations reject a second launch for a session with a pending result with ErrFlowInProgress.
type Launcher interface {
	Launch(ctx context.Context, sessionID uuid.UUID, requestCode int) error
}

type LauncherFunc func(ctx context.Context, sessionID uuid.UUID, requestCode int) error

func (fn LauncherFunc) Launch(ctx context.Context, sessionID uuid.UUID, requestCode int) error {
	return fn(ctx, sessionID, requestCode)
}

// Claimer hands out the pending launch of a session exactly once.
//
// Claim returns the request code of the launch, or ErrResultDelivered when there is none.
type Claimer interface {
	Claim(ctx context.Context, sessionID uuid.UUID) (int, error)
}
