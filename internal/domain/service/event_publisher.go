package service

import (
	"context"
	"time"
)

// AuditAction names an operator action worth recording.
type AuditAction string

const (
	AuditSupplierSelected     AuditAction = "supplier_selected"
	AuditPurchaseOrderCreated AuditAction = "purchase_order_created"
	AuditOrderUpdated         AuditAction = "order_updated"
	AuditOrderDeleted         AuditAction = "order_deleted"
	AuditOrdersSeeded         AuditAction = "orders_seeded"
	AuditExportCreated        AuditAction = "export_created"
	AuditLogin                AuditAction = "login"
	AuditLogout               AuditAction = "logout"
	AuditSessionExpired       AuditAction = "session_expired"
)

// AuditEvent is one operator action published for downstream consumers
type AuditEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Action     AuditAction       `json:"action"`
	Actor      string            `json:"actor,omitempty"`
	OrderID    int               `json:"order_id,omitempty"`
	ItemID     int               `json:"item_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
