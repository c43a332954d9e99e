package visacheckout

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

// Staged is the state handed from a launch to the external flow.
type Staged struct {
	SessionID   uuid.UUID          `json:"sessionId"`
	Environment *EnvironmentConfig `json:"environment,omitempty"`
	Request     *PaymentRequest    `json:"paymentRequest,omitempty"`
}

// Stager keeps staged state between a launch and the start of the external flow.
//
// Consume is read once, the state is cleared on read and a second call returns ErrNothingStaged.
type Stager interface {
	StageEnvironment(ctx context.Context, sessionID uuid.UUID, env EnvironmentConfig) error
	StageRequest(ctx context.Context, sessionID uuid.UUID, req *PaymentRequest) error
	Consume(ctx context.Context, sessionID uuid.UUID) (*Staged, error)
}
