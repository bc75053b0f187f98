package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/audit-sub"
	localTimeout      = 10 * time.Second
	maxWorkerReply    = 1 << 10
)

// localHTTPPublisher posts audit events straight to the audit worker in the push
// subscription format, for development without a Pub/Sub emulator
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage is the body Pub/Sub posts to push subscription endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher for the worker at endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) pushMessage(event *service.AuditEvent) (*PushMessage, error) {
	data, attrs, err := encode(event)
	if err != nil {
		return nil, err
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	return msg, nil
}

func (p *localHTTPPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	msg, err := p.pushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "audit worker unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reply, _ := io.ReadAll(io.LimitReader(resp.Body, maxWorkerReply))

		return errors.Errorf("audit worker returned %d %s", resp.StatusCode, strings.TrimSpace(string(reply)))
	}

	p.logger.Debug("[LocalPubSub] Audit event delivered",
		slog.String("event_id", event.EventID),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
