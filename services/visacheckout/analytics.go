package visacheckout

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

const (
	EventTokenizeSucceeded      = "visacheckout.tokenize.succeeded"
	EventTokenizeFailed         = "visacheckout.tokenize.failed"
	EventActivityResultOK       = "visacheckout.activityresult.ok"
	EventActivityResultCanceled = "visacheckout.activityresult.canceled"
	EventActivityResultFailed   = "visacheckout.activityresult.failed"
)

// AnalyticsSink receives flow events. It is fire and forget, failures stay inside the sink.
type AnalyticsSink interface {
	SendEvent(ctx context.Context, name string)
}

type AnalyticsFunc func(ctx context.Context, name string)

func (fn AnalyticsFunc) SendEvent(ctx context.Context, name string) {
	fn(ctx, name)
}

type sessionIDKey struct{}

// ContextWithSessionID attaches the flow session to ctx so sinks can correlate events.
func ContextWithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the flow session attached to ctx.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(uuid.UUID)
	return id, ok
}
