package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/delivery/worker/handler"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"
	mockService "backoffice/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, cfg *config.Config, store service.ExportStore) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Store: store})

	return NewEcho(cfg, logger, push)
}

func auditPush(t *testing.T) string {
	t.Helper()

	data, err := json.Marshal(service.AuditEvent{
		EventID:    "evt-9",
		Action:     service.AuditPurchaseOrderCreated,
		OrderID:    1001,
		OccurredAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	})
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-9"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestWorker_Routes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		e := newTestEcho(t, &config.Config{}, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ready reports archiving", func(t *testing.T) {
		e := newTestEcho(t, &config.Config{}, mockService.NewMockExportStore(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","archiving":true}`, rec.Body.String())
	})

	t.Run("push archives", func(t *testing.T) {
		store := mockService.NewMockExportStore(t)
		store.EXPECT().Save(mock.Anything, "audit/2026-03-04/evt-9.json", mock.Anything, "application/json").
			Return("audit/2026-03-04/evt-9.json", nil).Once()
		e := newTestEcho(t, &config.Config{}, store)

		req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(auditPush(t)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("google push without token is rejected", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = "production"
		e := newTestEcho(t, cfg, mockService.NewMockExportStore(t))

		req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(auditPush(t)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
