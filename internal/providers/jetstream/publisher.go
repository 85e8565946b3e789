package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// MaxAge bounds how long broadcasts are retained in the stream
	MaxAge time.Duration
}

const streamSetupTimeout = 10 * time.Second

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	streamName    string
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher for view invalidations
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	if prefix == "" {
		prefix = "crm.views"
	}

	if cfg.StreamName != "" {
		if err := ensureStream(js, cfg, prefix); err != nil {
			nc.Close()
			return nil, err
		}
	}

	return &publisher{
		nc:            nc,
		js:            js,
		streamName:    cfg.StreamName,
		subjectPrefix: prefix,
		json:          jsonAdapter,
	}, nil
}

// ensureStream creates the invalidation stream, or updates its subjects and retention
func ensureStream(js adapter.JetStream, cfg Config, prefix string) error {
	ctx, cancel := context.WithTimeout(context.Background(), streamSetupTimeout)
	defer cancel()

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}

	info, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{prefix + ".>"},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    maxAge,
	})
	if err != nil {
		return fmt.Errorf("failed to create or update stream %s: %w", cfg.StreamName, err)
	}

	if info != nil {
		logger.Info("JetStream stream ready",
			zap.String("stream", info.Config.Name),
			zap.Strings("subjects", info.Config.Subjects))
	}
	return nil
}

// PublishInvalidation publishes a view invalidation to NATS JetStream
func (p *publisher) PublishInvalidation(ctx context.Context, event *domain.ViewInvalidation) error {
	logger.DebugCtx(ctx, "Publishing view invalidation",
		zap.String("ownerID", event.OwnerID),
		zap.Strings("routes", event.Routes))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal invalidation: %w", err)
	}

	// Format: {prefix}.invalidate, e.g. crm.views.invalidate
	subject := p.subjectPrefix + ".invalidate"

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish invalidation: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
