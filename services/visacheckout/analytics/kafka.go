package analytics

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	kafkautils "github.com/brave-intl/visacheckout/libs/kafka"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/linkedin/goavro"
	"github.com/segmentio/kafka-go"
)

//go:embed event.avsc
var eventSchema string

const eventCodec = "visacheckout_event"

// MessageWriter is the part of kafka.Writer the sink needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes avro encoded events keyed by session id.
type Kafka struct {
	writer MessageWriter
	codec  *goavro.Codec
	now    func() time.Time
}

func NewKafka(writer MessageWriter) (*Kafka, error) {
	codecs, err := kafkautils.GenerateCodecs(map[string]string{eventCodec: eventSchema})
	if err != nil {
		return nil, err
	}

	result := &Kafka{
		writer: writer,
		codec:  codecs[eventCodec],
		now:    time.Now,
	}

	return result, nil
}

// NewKafkaWithBrokers connects an asynchronous writer to topic on brokers.
func NewKafkaWithBrokers(ctx context.Context, brokers []string, topic string) (*Kafka, error) {
	writer, err := kafkautils.NewWriter(ctx, brokers, topic)
	if err != nil {
		return nil, err
	}

	return NewKafka(writer)
}

func (k *Kafka) SendEvent(ctx context.Context, name string) {
	if err := k.send(ctx, name); err != nil {
		logging.Logger(ctx, "analytics.Kafka").Warn().Err(err).Str("event", name).Msg("failed to publish event")
	}
}

func (k *Kafka) send(ctx context.Context, name string) error {
	var sessionID string
	if id, ok := visacheckout.SessionIDFromContext(ctx); ok {
		sessionID = id.String()
	}

	value, err := k.codec.BinaryFromNative(nil, map[string]interface{}{
		"name":      name,
		"sessionId": sessionID,
		"timestamp": k.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sessionID),
		Value: value,
	})
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
