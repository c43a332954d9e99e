package visacheckout

import (
	"context"
	"errors"
	"fmt"

	uuid "github.com/satori/go.uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=mock . ConfigurationFetcher,LibraryLoader,Stager,Launcher,Claimer,Tokenizer,AnalyticsSink,Callback

// Service builds flows over a fixed set of collaborators.
type Service struct {
	fetcher   ConfigurationFetcher
	loader    LibraryLoader
	stager    Stager
	launcher  Launcher
	tokenizer Tokenizer
	claimer   Claimer
	analytics AnalyticsSink
}

type Option func(s *Service)

// WithClaimer makes results claim the pending launch before they are dispatched.
func WithClaimer(c Claimer) Option {
	return func(s *Service) {
		s.claimer = c
	}
}

func WithAnalytics(a AnalyticsSink) Option {
	return func(s *Service) {
		s.analytics = a
	}
}

func NewService(
	fetcher ConfigurationFetcher,
	loader LibraryLoader,
	stager Stager,
	launcher Launcher,
	tokenizer Tokenizer,
	opts ...Option,
) *Service {
	result := &Service{
		fetcher:   fetcher,
		loader:    loader,
		stager:    stager,
		launcher:  launcher,
		tokenizer: tokenizer,
	}

	for _, opt := range opts {
		opt(result)
	}

	return result
}

// NewFlow starts a flow under a new session.
func (s *Service) NewFlow(ctx context.Context, cb Callback) (*Flow, error) {
	return s.Resume(ctx, uuid.NewV4(), cb)
}

// Resume binds a flow to an existing session, used when one checkout spans several requests.
func (s *Service) Resume(ctx context.Context, sessionID uuid.UUID, cb Callback) (*Flow, error) {
	if uuid.Equal(sessionID, uuid.Nil) {
		return nil, ErrInvalidSessionID
	}

	cfg, err := s.fetcher.Configuration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch configuration: %w", err)
	}

	if cb == nil {
		cb = CallbackFuncs{}
	}

	result := &Flow{
		sessionID: sessionID,
		cfg:       cfg,
		svc:       s,
		cb:        cb,
	}

	return result, nil
}

// Consume hands the staged state of a session to the external flow, once.
func (s *Service) Consume(ctx context.Context, sessionID uuid.UUID) (*Staged, error) {
	return s.stager.Consume(ctx, sessionID)
}

// Release drops the pending launch of a session whose staged state never
// reached the external flow, so the session can be authorized again.
func (s *Service) Release(ctx context.Context, sessionID uuid.UUID) error {
	if s.claimer == nil {
		return nil
	}

	if _, err := s.claimer.Claim(ctx, sessionID); err != nil && !errors.Is(err, ErrResultDelivered) {
		return fmt.Errorf("failed to release launch: %w", err)
	}

	return nil
}
