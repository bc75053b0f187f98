package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"backoffice/config"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops audit events when Pub/Sub is not configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAuditEvent(_ context.Context, event *service.AuditEvent) error {
	p.logger.Debug("[NoopPubSub] Audit event dropped",
		slog.String("event_id", event.EventID),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the audit publisher from pubsub.provider. Audit publishing is
// optional, an empty provider keeps the console working without it.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing audit publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Audit publishing disabled")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: local endpoint is required for local provider")
		}
		logger.Info("Publishing audit events to the local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing audit events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// encode serializes an event with the attributes subscribers filter on
func encode(event *service.AuditEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attrs := map[string]string{
		"event_id": event.EventID,
		"action":   string(event.Action),
	}
	if event.OrderID != 0 {
		attrs["order_id"] = strconv.Itoa(event.OrderID)
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return data, attrs, nil
}

// orderingKey groups the events of one order, other events are unordered
func orderingKey(event *service.AuditEvent) string {
	if event.OrderID == 0 {
		return ""
	}

	return "order-" + strconv.Itoa(event.OrderID)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
