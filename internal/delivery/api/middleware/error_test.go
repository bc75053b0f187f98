package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/delivery/api/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/login", LoginURL(""))
	assert.Equal(t, "/login", LoginURL("/login?redirect=%2Forders"))
	assert.Equal(t, "/login?redirect=%2Forders%3Fpage%3D2", LoginURL("/orders?page=2"))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		header       map[string]string
		err          error
		wantStatus   int
		wantLocation string
		wantCode     string
	}{
		{
			name:         "console view redirects to login",
			method:       http.MethodGet,
			target:       "/orders?page=2",
			err:          errors.WithStack(domainerrors.ErrNotAuthenticated),
			wantStatus:   http.StatusFound,
			wantLocation: "/login?redirect=%2Forders%3Fpage%3D2",
		},
		{
			name:         "json route answers 401 with the login route",
			method:       http.MethodGet,
			target:       "/api/orders",
			err:          errors.WithStack(domainerrors.ErrSessionExpired),
			wantStatus:   http.StatusUnauthorized,
			wantLocation: "/login?redirect=%2Fapi%2Forders",
			wantCode:     "SESSION_EXPIRED",
		},
		{
			name:         "console fragment keeps the page it came from",
			method:       http.MethodPost,
			target:       "/console/orders/filter",
			header:       map[string]string{"X-Console-Path": "/dashboard"},
			err:          domainerrors.ErrNotAuthenticated,
			wantStatus:   http.StatusUnauthorized,
			wantLocation: "/login?redirect=%2Fdashboard",
			wantCode:     "NOT_AUTHENTICATED",
		},
		{
			name:       "application error keeps its status",
			method:     http.MethodPost,
			target:     "/api/purchase_orders",
			err:        errors.WithStack(domainerrors.ErrUnmappedVendor),
			wantStatus: http.StatusBadRequest,
			wantCode:   "UNMAPPED_VENDOR",
		},
		{
			name:       "echo error",
			method:     http.MethodGet,
			target:     "/nowhere",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unhandled error",
			method:     http.MethodGet,
			target:     "/api/orders",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewErrorMiddleware(testLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
			if tt.wantCode == "" {
				return
			}

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, body.Error.Redirect)
			}
		})
	}
}
