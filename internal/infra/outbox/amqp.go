package outbox

import (
	"context"
	"strconv"
	"sync"

	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes to the default exchange with one durable queue per topic.
type AMQPPublisher struct {
	conn *amqp.Connection

	mu       sync.Mutex
	ch       *amqp.Channel
	declared map[string]bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq channel open failed")
	}
	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		declared: make(map[string]bool),
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[msg.Topic] {
		if _, err := p.ch.QueueDeclare(msg.Topic, true, false, false, false, nil); err != nil {
			return errs.Wrapf(err, "rabbitmq queue declare %s", msg.Topic)
		}
		p.declared[msg.Topic] = true
	}

	err := p.ch.PublishWithContext(ctx, "", msg.Topic, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     strconv.FormatInt(msg.ID, 10),
		CorrelationId: msg.Key,
		Timestamp:     msg.CreatedAt.UTC(),
		Body:          msg.Payload,
	})
	if err != nil {
		return errs.Wrapf(err, "rabbitmq publish %s", msg.Topic)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	return p.conn.Close()
}
