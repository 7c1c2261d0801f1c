package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/services"
)

// MatchCompleted is the body of a message on the results queue.
type MatchCompleted struct {
	Key    string             `json:"key"`
	Result models.MatchResult `json:"result"`
}

// ResultRecorder is the part of services.MatchService the consumer needs.
type ResultRecorder interface {
	RecordResult(ctx context.Context, key string, result models.MatchResult) (*services.MatchOutcome, error)
}

var (
	errMalformedMessage = errors.New("malformed match completed message")
	errDisconnected     = errors.New("amqp: consumer is not connected")
)

// ReconnectConfig controls how the consumer re-dials after losing the broker.
type ReconnectConfig struct {
	MaxRetries    int // 0 retries forever
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		MaxRetries:    0,
		InitialDelay:  1 * time.Second,
		MaxDelay:      60 * time.Second,
		BackoffFactor: 2.0,
	}
}

type AMQPConsumer struct {
	url       string
	queue     string
	recorder  ResultRecorder
	logger    *slog.Logger
	reconnect ReconnectConfig

	// dial opens a connection and returns its delivery channel.
	dial func(ctx context.Context) (<-chan amqp.Delivery, error)

	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	connected bool
}

func NewAMQPConsumer(url, queue string, recorder ResultRecorder, logger *slog.Logger) *AMQPConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	c := &AMQPConsumer{
		url:       url,
		queue:     queue,
		recorder:  recorder,
		logger:    logger,
		reconnect: DefaultReconnectConfig(),
	}
	c.dial = c.connectAndConsume
	return c
}

// Start connects and consumes the results queue until ctx is cancelled.
// A lost connection is re-dialled with exponential backoff.
func (c *AMQPConsumer) Start(ctx context.Context) error {
	msgs, err := c.dial(ctx)
	if err != nil {
		return err
	}
	c.setConnected(true)
	go c.run(ctx, msgs)
	return nil
}

func (c *AMQPConsumer) run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		c.consume(ctx, msgs)
		c.setConnected(false)
		if ctx.Err() != nil {
			return
		}

		var err error
		msgs, err = c.redial(ctx)
		if err != nil {
			c.logger.Error("AMQP consumer stopped", slog.String("queue", c.queue), slog.Any("error", err))
			return
		}
		c.setConnected(true)
		c.logger.Info("AMQP consumer reconnected", slog.String("queue", c.queue))
	}
}

// redial retries the connection until it succeeds, ctx ends or the retry
// budget runs out.
func (c *AMQPConsumer) redial(ctx context.Context) (<-chan amqp.Delivery, error) {
	delay := c.reconnect.InitialDelay
	for attempt := 1; ; attempt++ {
		if c.reconnect.MaxRetries > 0 && attempt > c.reconnect.MaxRetries {
			return nil, fmt.Errorf("gave up after %d reconnect attempts", c.reconnect.MaxRetries)
		}

		c.logger.Warn("reconnecting to AMQP",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		c.closeConnection()
		msgs, err := c.dial(ctx)
		if err == nil {
			return msgs, nil
		}
		c.logger.Error("AMQP reconnect failed", slog.Int("attempt", attempt), slog.Any("error", err))

		delay = time.Duration(float64(delay) * c.reconnect.BackoffFactor)
		if delay > c.reconnect.MaxDelay {
			delay = c.reconnect.MaxDelay
		}
	}
}

func (c *AMQPConsumer) connectAndConsume(_ context.Context) (<-chan amqp.Delivery, error) {
	conn, err := amqp.DialConfig(c.url, amqp.Config{
		Heartbeat: 30 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	c.mu.Lock()
	c.conn, c.channel = conn, channel
	c.mu.Unlock()

	if err := channel.Qos(10, 0, false); err != nil {
		c.closeConnection()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	queue, err := channel.QueueDeclare(
		c.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		c.closeConnection()
		return nil, fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}

	msgs, err := channel.Consume(
		queue.Name,
		"arbitro",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		c.closeConnection()
		return nil, fmt.Errorf("failed to consume %s: %w", queue.Name, err)
	}

	go func() {
		if closeErr := <-conn.NotifyClose(make(chan *amqp.Error, 1)); closeErr != nil {
			c.logger.Warn("AMQP connection lost", slog.Any("error", closeErr))
		}
	}()

	c.logger.Info("consuming match results", slog.String("queue", queue.Name))
	return msgs, nil
}

// consume returns when ctx is cancelled or the broker closes the channel.
func (c *AMQPConsumer) consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				c.logger.Warn("AMQP delivery channel closed", slog.String("queue", c.queue))
				return
			}
			c.deliver(ctx, d)
		}
	}
}

func (c *AMQPConsumer) deliver(ctx context.Context, d amqp.Delivery) {
	requeue, err := c.handleMessage(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.Error("failed to ack delivery", slog.Any("error", ackErr))
		}
		return
	}

	c.logger.Error("match result rejected",
		slog.String("message_id", d.MessageId),
		slog.Bool("requeue", requeue),
		slog.Any("error", err))
	if nackErr := d.Nack(false, requeue); nackErr != nil {
		c.logger.Error("failed to nack delivery", slog.Any("error", nackErr))
	}
}

// handleMessage records one result. It reports whether a failed message is
// worth redelivering: malformed or invalid results never are.
func (c *AMQPConsumer) handleMessage(ctx context.Context, body []byte) (bool, error) {
	var msg MatchCompleted
	if err := json.Unmarshal(body, &msg); err != nil {
		return false, fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	if strings.TrimSpace(msg.Key) == "" {
		return false, fmt.Errorf("%w: key is empty", errMalformedMessage)
	}

	outcome, err := c.recorder.RecordResult(ctx, msg.Key, msg.Result)
	if err != nil {
		if errors.Is(err, services.ErrValidationFailed) || errors.Is(err, services.ErrMatchKeyRequired) {
			return false, err
		}
		return true, err
	}

	c.logger.Info("match result recorded",
		slog.String("key", outcome.Key),
		slog.String("kind", outcome.Kind),
		slog.Bool("applied", outcome.Applied))
	return false, nil
}

// Check reports an error while the consumer has no live broker connection.
func (c *AMQPConsumer) Check(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return errDisconnected
	}
	return nil
}

func (c *AMQPConsumer) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *AMQPConsumer) closeConnection() error {
	c.mu.Lock()
	channel, conn := c.channel, c.conn
	c.channel, c.conn = nil, nil
	c.mu.Unlock()

	var errs []error
	if channel != nil {
		if err := channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases the current connection. Cancel the Start context first to
// stop reconnecting.
func (c *AMQPConsumer) Close() error {
	c.setConnected(false)
	return c.closeConnection()
}
