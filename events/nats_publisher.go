package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/Dosada05/arbitro/brackets"
)

// NATSPublisher mirrors every hub notification onto NATS so other services
// can follow tournaments and leagues without a websocket.
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
	logger *slog.Logger
}

func NewNATSPublisher(url, prefix string, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	nc, err := nats.Connect(url,
		nats.Name("arbitro"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{nc: nc, prefix: prefix, logger: logger}, nil
}

func (p *NATSPublisher) Notify(ctx context.Context, msg brackets.WebSocketMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal notification", slog.Any("error", err))
		return
	}
	subject := Subject(p.prefix, msg.Type)
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish to NATS", slog.String("subject", subject), slog.Any("error", err))
	}
}

// Check reports an error while the connection is down.
func (p *NATSPublisher) Check(_ context.Context) error {
	if !p.nc.IsConnected() {
		return fmt.Errorf("nats: %s", p.nc.Status())
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}

// Subject maps a message type such as TOURNAMENT_UPDATED to
// "<prefix>.tournament.updated".
func Subject(prefix, msgType string) string {
	parts := strings.SplitN(strings.ToLower(msgType), "_", 2)
	subject := strings.Join(parts, ".")
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}
