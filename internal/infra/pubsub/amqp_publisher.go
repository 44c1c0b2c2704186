package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// amqpSession owns the broker connection and redials it once the broker has dropped it.
type amqpSession struct {
	url   string
	queue string
	conn  *amqp.Connection
}

// openChannel opens a channel and (re)declares the durable queue on it.
func (s *amqpSession) openChannel() (amqpChannel, error) {
	if s.conn == nil || s.conn.IsClosed() {
		conn, err := amqp.Dial(s.url)
		if err != nil {
			return nil, errors.Wrap(err, "rabbitmq dial failed")
		}
		s.conn = conn
	}

	ch, err := s.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq channel open failed")
	}

	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()

		return nil, errors.Wrapf(err, "rabbitmq queue declare %s failed", s.queue)
	}

	return ch, nil
}

func (s *amqpSession) close() error {
	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}

	return s.conn.Close()
}

// amqpPublisher implements EventPublisher on a durable RabbitMQ queue.
// A channel closed by the broker is replaced on the next publish.
type amqpPublisher struct {
	queue     string
	logger    *slog.Logger
	open      func() (amqpChannel, error)
	closeConn func() error

	mu sync.Mutex // guards ch
	ch amqpChannel
}

// NewAMQPPublisher dials url and declares queue.
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	session := &amqpSession{url: url, queue: queue}

	ch, err := session.openChannel()
	if err != nil {
		_ = session.close()

		return nil, err
	}

	logger.Info("AMQP publisher initialized", slog.String("queue", queue))

	return &amqpPublisher{
		queue:     queue,
		logger:    logger,
		open:      session.openChannel,
		closeConn: session.close,
		ch:        ch,
	}, nil
}

// PublishScrobbleEvent sends a persistent message through the default exchange.
func (p *amqpPublisher) PublishScrobbleEvent(ctx context.Context, event *service.ScrobbleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := newAMQPMessage(event, body)

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publishLocked(ctx, msg)
	if errors.Is(err, amqp.ErrClosed) {
		p.logger.Warn("[AMQP] Channel closed during publish, reopening", slog.String("queue", p.queue))
		p.ch = nil
		err = p.publishLocked(ctx, msg)
	}
	if err != nil {
		return errors.Wrapf(err, "publish scrobble event %s", event.EventID)
	}

	p.logger.Debug("[AMQP] Scrobble event published",
		slog.String("queue", p.queue),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *amqpPublisher) publishLocked(ctx context.Context, msg amqp.Publishing) error {
	if p.ch == nil || p.ch.IsClosed() {
		ch, err := p.open()
		if err != nil {
			return err
		}
		p.ch = ch
	}

	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
}

// Close closes the channel and then the connection.
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var chErr error
	if p.ch != nil && !p.ch.IsClosed() {
		chErr = p.ch.Close()
	}
	p.ch = nil

	return errors.Join(chErr, p.closeConn())
}

func newAMQPMessage(event *service.ScrobbleEvent, body []byte) amqp.Publishing {
	headers := amqp.Table{}
	for key, value := range scrobbleAttributes(event) {
		headers[key] = value
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	}
}
