// Package handler holds the audit worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const archiveContentType = "application/json"

// PubSubMessage is the envelope of a Pub/Sub push request
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return "retryable: " + e.err.Error() }

func (e *retryableError) Unwrap() error { return e.err }

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// PushHandler archives audit events pushed by the audit subscription. The archive key is
// derived from the event id, so a redelivered event overwrites its own copy.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	store          service.ExportStore
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  service.ExportStore `optional:"true"`
}

// NewPushHandler creates the push handler. OIDC tokens are checked only for the google
// provider outside development, local pushes carry none.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	return &PushHandler{
		verifyPushAuth: pubsubCfg != nil &&
			pubsubCfg.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop,
		logger: params.Logger,
		store:  params.Store,
	}
}

// HandlePush acknowledges with 200, asks for redelivery with 503 and rejects
// undecodable pushes with 400 so they go to the dead letter topic.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push without a valid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Undecodable push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := requestIDOf(c.Request().Context(), msg, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("event_id", event.EventID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(c.Request().Context(), requestID), logger)

	logger.Info("[Worker] Audit event received",
		slog.String("action", string(event.Action)),
		slog.String("actor", event.Actor),
		slog.Int("order_id", event.OrderID),
	)

	if err := h.archive(ctx, event); err != nil {
		retry := isRetryableError(err)
		logger.Error("[Worker] Failed to archive audit event", slog.Any("error", err), slog.Bool("retryable", retry))
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// Ready reports whether events are archived or only logged
func (h *PushHandler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"archiving": h.store != nil,
	})
}

// decodePush unwraps the envelope. An event without its own id takes the message id.
func decodePush(c echo.Context) (*PubSubMessage, *service.AuditEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "bind envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode data")
	}

	var event service.AuditEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "parse audit event")
	}
	if event.EventID == "" {
		event.EventID = msg.Message.MessageID
	}

	return &msg, &event, nil
}

// ArchiveKey is the object key an audit event is archived under
func ArchiveKey(event *service.AuditEvent) string {
	return path.Join("audit", event.OccurredAt.UTC().Format("2006-01-02"), event.EventID+".json")
}

func (h *PushHandler) archive(ctx context.Context, event *service.AuditEvent) error {
	if h.store == nil {
		return nil
	}
	if event.EventID == "" {
		return errors.New("audit event has no id")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	key, err := h.store.Save(ctx, ArchiveKey(event), payload, archiveContentType)
	if err != nil {
		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("[Worker] Audit event archived", slog.String("key", key))

	return nil
}

// requestIDOf follows the console request that caused the event: message attribute,
// then the event, then the push request, then a fresh id.
func requestIDOf(ctx context.Context, msg *PubSubMessage, event *service.AuditEvent) string {
	for _, id := range []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
// The audience is this endpoint's URL.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}
