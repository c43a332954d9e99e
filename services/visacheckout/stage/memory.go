// Package stage keeps staged checkouts and pending launches in process memory
// for a relay running without redis.
package stage

import (
	"context"
	"sync"
	"time"

	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/patrickmn/go-cache"
	uuid "github.com/satori/go.uuid"
)

// Memory implements visacheckout.Stager with one entry per session.
//
// Entries expire after the stage ttl when nobody consumes them.
type Memory struct {
	mu     sync.Mutex
	staged *cache.Cache
}

// New returns a Memory whose entries live for ttl, a non positive ttl falls back to fifteen minutes.
func New(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Memory{staged: cache.New(ttl, 2*ttl)}
}

func (m *Memory) StageEnvironment(_ context.Context, sessionID uuid.UUID, env visacheckout.EnvironmentConfig) error {
	m.update(sessionID, func(s *visacheckout.Staged) {
		s.Environment = &env
	})

	return nil
}

func (m *Memory) StageRequest(_ context.Context, sessionID uuid.UUID, req *visacheckout.PaymentRequest) error {
	m.update(sessionID, func(s *visacheckout.Staged) {
		s.Request = req
	})

	return nil
}

// Consume removes the entry of sessionID and returns it.
func (m *Memory) Consume(_ context.Context, sessionID uuid.UUID) (*visacheckout.Staged, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.staged.Get(sessionID.String())
	if !ok {
		return nil, visacheckout.ErrNothingStaged
	}
	m.staged.Delete(sessionID.String())

	return v.(*visacheckout.Staged), nil
}

func (m *Memory) update(sessionID uuid.UUID, fn func(s *visacheckout.Staged)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &visacheckout.Staged{SessionID: sessionID}
	if v, ok := m.staged.Get(sessionID.String()); ok {
		prev := *v.(*visacheckout.Staged)
		staged = &prev
	}

	fn(staged)

	// staging refreshes the expiry
	m.staged.Set(sessionID.String(), staged, cache.DefaultExpiration)
}
