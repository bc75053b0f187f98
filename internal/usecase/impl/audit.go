package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

// auditor publishes operator actions. Publishing failures never fail the action.
type auditor struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newAuditor(publisher service.EventPublisher, logger *slog.Logger) *auditor {
	return &auditor{publisher: publisher, logger: logger, now: time.Now}
}

func (a *auditor) record(ctx context.Context, event service.AuditEvent) {
	if a == nil || a.publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = a.now().UTC()
	if event.Actor == "" {
		event.Actor = deliverycontext.GetOperator(ctx)
	}

	if err := a.publisher.PublishAuditEvent(ctx, &event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to publish audit event",
			slog.String("action", string(event.Action)),
			slog.Any("error", err),
		)
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
