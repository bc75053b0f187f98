package impl

import (
	"io"
	"log/slog"
	"testing"

	mockService "backoffice/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// quietPublisher accepts any audit event.
func quietPublisher(t *testing.T) *mockService.MockEventPublisher {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}
