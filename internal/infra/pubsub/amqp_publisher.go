package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange.
// Routing keys are journey.step.<n> so consumers can bind per step.
type amqpPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publishing.
	mu      sync.Mutex
	channel amqpChannel
}

// NewAMQPPublisher dials the broker and declares the durable topic exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to AMQP broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open AMQP channel")
	}

	publisher, err := newAMQPPublisher(ch, exchange, logger)
	if err != nil {
		conn.Close()

		return nil, err
	}
	publisher.conn = conn

	logger.Info("AMQP publisher initialized", slog.String("exchange", exchange))

	return publisher, nil
}

func newAMQPPublisher(ch amqpChannel, exchange string, logger *slog.Logger) (*amqpPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return &amqpPublisher{
		exchange: exchange,
		logger:   logger,
		channel:  ch,
	}, nil
}

// PublishJourneyStep publishes a persistent JSON message for the step.
func (p *amqpPublisher) PublishJourneyStep(ctx context.Context, event *service.JourneyStepEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	routingKey := stepRoutingKey(event.Step)
	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: event.RequestID,
		MessageId:     fmt.Sprintf("%s-%d", event.RequestID, event.Step),
		Timestamp:     event.SubmittedAt,
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", routingKey)
	}

	p.logger.Info("[AMQP] Journey step published",
		slog.String("request_id", event.RequestID),
		slog.String("routing_key", routingKey),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *amqpPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func stepRoutingKey(step int) string {
	return fmt.Sprintf("journey.step.%d", step)
}
