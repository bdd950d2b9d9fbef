// Package outbox relays committed booking events from the outbox table to a message broker.
package outbox

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/errs"
)

const (
	BrokerNone  = "none"
	BrokerKafka = "kafka"
	BrokerAMQP  = "amqp"
)

var ErrUnknownBroker = errs.New("unknown outbox broker")

// Message is one outbox row on its way to the broker. Key is the aggregate (booking) id,
// so every event of a booking lands on the same partition or queue in order.
type Message struct {
	ID        int64
	Key       string
	Topic     string
	Payload   []byte
	CreatedAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

func NewPublisher(cfg config.Config) (Publisher, error) {
	switch strings.ToLower(cfg.Outbox.Broker) {
	case "", BrokerNone:
		return NewLogPublisher(), nil
	case BrokerKafka:
		return NewKafkaPublisher(cfg.Kafka)
	case BrokerAMQP:
		return NewAMQPPublisher(cfg.AMQP)
	default:
		return nil, errs.Wrapf(ErrUnknownBroker, "broker %q", cfg.Outbox.Broker)
	}
}

// LogPublisher only logs; used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "Outbox event",
		slog.Int64("id", msg.ID),
		slog.String("topic", msg.Topic),
		slog.String("key", msg.Key),
		slog.Int("bytes", len(msg.Payload)))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
