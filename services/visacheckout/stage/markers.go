package stage

import (
	"context"
	"sync"
	"time"

	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/patrickmn/go-cache"
	uuid "github.com/satori/go.uuid"
)

const defaultTTL = 15 * time.Minute

// Markers tracks pending launches in process memory.
//
// It implements visacheckout.Launcher and visacheckout.Claimer for a relay running without redis.
type Markers struct {
	mu      sync.Mutex
	pending *cache.Cache
}

// NewMarkers returns Markers whose launches expire after ttl, a non positive ttl falls back to fifteen minutes.
func NewMarkers(ttl time.Duration) *Markers {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Markers{pending: cache.New(ttl, 2*ttl)}
}

func (m *Markers) Launch(_ context.Context, sessionID uuid.UUID, requestCode int) error {
	if err := m.pending.Add(sessionID.String(), requestCode, cache.DefaultExpiration); err != nil {
		return visacheckout.ErrFlowInProgress
	}

	return nil
}

func (m *Markers) Claim(_ context.Context, sessionID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.pending.Get(sessionID.String())
	if !ok {
		return 0, visacheckout.ErrResultDelivered
	}
	m.pending.Delete(sessionID.String())

	return v.(int), nil
}
