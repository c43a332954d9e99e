package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	uuid "github.com/satori/go.uuid"
	"github.com/segmentio/kafka-go"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafka_SendEvent(t *testing.T) {
	w := &fakeWriter{}

	sink, err := NewKafka(w)
	must.NoError(t, err)

	now := time.UnixMilli(1700000000123)
	sink.now = func() time.Time { return now }

	id := uuid.NewV4()
	ctx := visacheckout.ContextWithSessionID(context.Background(), id)

	sink.SendEvent(ctx, visacheckout.EventActivityResultOK)

	must.Len(t, w.msgs, 1)
	should.Equal(t, id.String(), string(w.msgs[0].Key))

	native, _, err := sink.codec.NativeFromBinary(w.msgs[0].Value)
	must.NoError(t, err)

	event := native.(map[string]interface{})
	should.Equal(t, visacheckout.EventActivityResultOK, event["name"])
	should.Equal(t, id.String(), event["sessionId"])
	should.Equal(t, now.UnixMilli(), event["timestamp"])

	must.NoError(t, sink.Close())
	should.True(t, w.closed)
}

func TestKafka_SendEvent_WriteFails(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}

	sink, err := NewKafka(w)
	must.NoError(t, err)

	should.NotPanics(t, func() {
		sink.SendEvent(context.Background(), visacheckout.EventTokenizeFailed)
	})
	should.Error(t, sink.send(context.Background(), visacheckout.EventTokenizeFailed))
}

func TestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()

	c, err := NewCounter(reg)
	must.NoError(t, err)

	c.SendEvent(context.Background(), visacheckout.EventActivityResultCanceled)
	c.SendEvent(context.Background(), visacheckout.EventActivityResultCanceled)

	should.Equal(t, float64(2), testutil.ToFloat64(c.events.WithLabelValues(visacheckout.EventActivityResultCanceled)))

	// registering twice hands back the same collector
	again, err := NewCounter(reg)
	must.NoError(t, err)
	should.Same(t, c.events, again.events)
}

func TestMulti(t *testing.T) {
	var got []string
	rec := visacheckout.AnalyticsFunc(func(_ context.Context, name string) {
		got = append(got, name)
	})

	sink := Multi{rec, nil, Log{}, rec}
	sink.SendEvent(context.Background(), visacheckout.EventTokenizeSucceeded)

	should.Equal(t, []string{visacheckout.EventTokenizeSucceeded, visacheckout.EventTokenizeSucceeded}, got)
}
