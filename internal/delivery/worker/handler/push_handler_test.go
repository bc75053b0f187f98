package handler

import (
	"context"
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
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	mockService "backoffice/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(store service.ExportStore) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: testLogger(),
		Store:  store,
	})
}

func pushBody(t *testing.T, data string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/p/subscriptions/audit"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event service.AuditEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/audit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestArchiveKey(t *testing.T) {
	event := &service.AuditEvent{
		EventID:    "evt-1",
		OccurredAt: time.Date(2026, 3, 4, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60)),
	}

	assert.Equal(t, "audit/2026-03-05/evt-1.json", ArchiveKey(event))
}

func TestPushHandler_HandlePush(t *testing.T) {
	occurred := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	event := service.AuditEvent{
		EventID:    "evt-1",
		Action:     service.AuditSupplierSelected,
		Actor:      "Jane Doe",
		OrderID:    1001,
		OccurredAt: occurred,
	}

	t.Run("archives the event", func(t *testing.T) {
		store := mockService.NewMockExportStore(t)
		store.EXPECT().
			Save(mock.Anything, "audit/2026-03-04/evt-1.json", mock.Anything, "application/json").
			RunAndReturn(func(_ context.Context, key string, data []byte, _ string) (string, error) {
				var archived service.AuditEvent
				require.NoError(t, json.Unmarshal(data, &archived))
				assert.Equal(t, event.Action, archived.Action)
				assert.Equal(t, 1001, archived.OrderID)

				return key, nil
			}).Once()

		rec := push(newHandler(store), pushBody(t, encodedEvent(t, event)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the message id", func(t *testing.T) {
		anonymous := event
		anonymous.EventID = ""

		store := mockService.NewMockExportStore(t)
		store.EXPECT().
			Save(mock.Anything, "audit/2026-03-04/msg-1.json", mock.Anything, "application/json").
			Return("audit/2026-03-04/msg-1.json", nil).Once()

		rec := push(newHandler(store), pushBody(t, encodedEvent(t, anonymous)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		store := mockService.NewMockExportStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket unavailable")).Once()

		rec := push(newHandler(store), pushBody(t, encodedEvent(t, event)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("no store acknowledges", func(t *testing.T) {
		rec := push(newHandler(nil), pushBody(t, encodedEvent(t, event)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	bad := []struct {
		name string
		body string
	}{
		{name: "malformed envelope", body: "{"},
		{name: "data is not base64", body: pushBody(t, "%%%")},
		{name: "data is not an event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")))},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			store := mockService.NewMockExportStore(t)

			rec := push(newHandler(store), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRetryableError(t *testing.T) {
	cause := errors.New("timeout")
	err := errors.WithStack(newRetryableError(cause))

	assert.True(t, isRetryableError(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, isRetryableError(cause))
}
