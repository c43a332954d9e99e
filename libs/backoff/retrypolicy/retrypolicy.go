package retrypolicy

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"
)

// Done is returned when CalculateNextDelay is done
const Done time.Duration = -1

var (
	// ConfigurationFetch is used for the gateway configuration request which sits on the
	// library launch path, so it gives up well before a user would
	ConfigurationFetch = mustNew(
		WithInitialInterval(100*time.Millisecond),
		WithBackoffCoefficient(2),
		WithMaximumInterval(time.Second),
		WithExpirationInterval(5*time.Second),
		WithMaximumAttempts(3),
	)
	// NoRetry never retries
	NoRetry = mustNew(WithMaximumAttempts(0))
)

//go:generate mockgen -destination=mock/mock.go -package=mock . Retry

type (
	// Retry implementations return the next delay duration or Done
	Retry interface {
		CalculateNextDelay() time.Duration
	}

	policy struct {
		startTime          time.Time
		currentAttempt     int
		initialInterval    time.Duration
		backoffCoefficient float64
		maximumInterval    time.Duration
		expirationInterval time.Duration
		maximumAttempt     int
	}

	// Option func to build retry policy
	Option func(policy *policy) error
)

// New return a new instance of retry policy
func New(options ...Option) (Retry, error) {
	p := &policy{startTime: time.Now()}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, fmt.Errorf("error initializing retry policy %w", err)
		}
	}

	return p, nil
}

func mustNew(options ...Option) func() Retry {
	if _, err := New(options...); err != nil {
		panic(err)
	}
	// policies are stateful, hand out a fresh one per operation
	return func() Retry {
		p, _ := New(options...)
		return p
	}
}

// CalculateNextDelay returns the next delay interval based on the retry policy
func (p *policy) CalculateNextDelay() time.Duration {
	if p.currentAttempt >= p.maximumAttempt {
		return Done
	}

	elapsed := time.Since(p.startTime)
	if p.expirationInterval != 0 && elapsed >= p.expirationInterval {
		return Done
	}

	next := float64(p.initialInterval) * math.Pow(p.backoffCoefficient, float64(p.currentAttempt))
	if next <= 0 {
		return Done
	}

	if p.maximumInterval != 0 {
		next = math.Min(next, float64(p.maximumInterval))
	}

	if p.expirationInterval != 0 {
		remaining := math.Max(0, float64(p.expirationInterval-elapsed))
		next = math.Min(remaining, next)
	}

	if time.Duration(next) < p.initialInterval {
		return Done
	}

	jitter := int64(0.2 * next)
	if jitter < 1 {
		jitter = 1
	}

	n, err := rand.Int(rand.Reader, big.NewInt(jitter))
	if err != nil {
		panic("panic generating random int for jitter")
	}
	next = next*0.8 + float64(n.Int64())

	p.currentAttempt++
	return time.Duration(next)
}

// WithInitialInterval sets the first delay
func WithInitialInterval(initialInterval time.Duration) Option {
	return func(p *policy) error {
		if initialInterval < 0 {
			return fmt.Errorf("initial interval must not be negative: %s", initialInterval)
		}
		p.initialInterval = initialInterval
		return nil
	}
}

// WithBackoffCoefficient sets the multiplier applied per attempt
func WithBackoffCoefficient(backoffCoefficient float64) Option {
	return func(p *policy) error {
		p.backoffCoefficient = backoffCoefficient
		return nil
	}
}

// WithMaximumInterval caps a single delay
func WithMaximumInterval(maximumInterval time.Duration) Option {
	return func(p *policy) error {
		p.maximumInterval = maximumInterval
		return nil
	}
}

// WithExpirationInterval caps the total time an operation is tried for
func WithExpirationInterval(expirationInterval time.Duration) Option {
	return func(p *policy) error {
		p.expirationInterval = expirationInterval
		return nil
	}
}

// WithMaximumAttempts caps the number of retries
func WithMaximumAttempts(maximumAttempts int) Option {
	return func(p *policy) error {
		p.maximumAttempt = maximumAttempts
		return nil
	}
}
