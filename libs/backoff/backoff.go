package backoff

import (
	"context"
	"time"

	"github.com/brave-intl/visacheckout/libs/backoff/retrypolicy"
)

// IsRetriable decides whether an error returned by an operation should be retried
type IsRetriable func(error) bool

// Retry executes operation until it succeeds, returns a non retriable error, the policy
// is exhausted or ctx is done
func Retry[T any](ctx context.Context, operation func() (T, error), policy retrypolicy.Retry, isRetriable IsRetriable) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		resp, err := operation()
		if err == nil {
			return resp, nil
		}

		if !isRetriable(err) {
			return zero, err
		}

		next := policy.CalculateNextDelay()
		if next == retrypolicy.Done {
			return zero, err
		}

		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
