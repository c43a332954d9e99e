// Package analytics holds the event sinks a relay fans flow events out to.
package analytics

import (
	"context"

	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/prometheus/client_golang/prometheus"
)

// Multi sends each event to every sink in order.
type Multi []visacheckout.AnalyticsSink

func (m Multi) SendEvent(ctx context.Context, name string) {
	for _, s := range m {
		if s != nil {
			s.SendEvent(ctx, name)
		}
	}
}

// Counter counts events per name.
type Counter struct {
	events *prometheus.CounterVec
}

// NewCounter registers the event counter with reg.
func NewCounter(reg prometheus.Registerer) (*Counter, error) {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visacheckout_analytics_events_total",
			Help: "Visa Checkout flow events by name",
		},
		[]string{"event"},
	)

	if err := reg.Register(events); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		events = are.ExistingCollector.(*prometheus.CounterVec)
	}

	return &Counter{events: events}, nil
}

func (c *Counter) SendEvent(_ context.Context, name string) {
	c.events.WithLabelValues(name).Inc()
}

// Log writes events to the context logger at debug level.
type Log struct{}

func (Log) SendEvent(ctx context.Context, name string) {
	logging.Logger(ctx, "analytics").Debug().Str("event", name).Msg("visa checkout event")
}
