package errors

import (
	"net/http"
	"testing"

	"backoffice/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopies(t *testing.T) {
	err := ErrUnmappedVendor.WithDetails("acme")

	assert.True(t, errors.Is(err, ErrUnmappedVendor))
	assert.False(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "acme", err.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrLoginFailed.WithMessage("Invalid credentials").WrapMessage("login")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid credentials", appErr.Message())
	assert.True(t, errors.Is(err, ErrLoginFailed))
}

func TestBackendError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		wantCode int
		wantMsg  string
	}{
		{name: "client error passes through", status: http.StatusConflict, message: "duplicate", wantCode: http.StatusConflict, wantMsg: "duplicate"},
		{name: "server error becomes bad gateway", status: http.StatusInternalServerError, wantCode: http.StatusBadGateway, wantMsg: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBackendError(tt.status, tt.message, "/api/orders")

			assert.Equal(t, tt.wantCode, err.HTTPCode())
			assert.Equal(t, tt.wantMsg, err.Message())
			assert.Contains(t, err.Error(), "/api/orders")
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(errors.Wrap(NewBackendError(http.StatusNotFound, "", "/api/products/X"), "get")))
	assert.False(t, IsNotFound(NewBackendError(http.StatusBadRequest, "", "/x")))
	assert.False(t, IsNotFound(errors.New("boom")))
}
