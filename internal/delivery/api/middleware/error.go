package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"backoffice/internal/delivery/api/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoginPath is the console login route
const LoginPath = "/login"

// jsonPrefixes are the route groups answered with JSON instead of a redirect
//
//nolint:gochecknoglobals
var jsonPrefixes = []string{"/api/", "/console/"}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// LoginURL is the login route that returns to original after signing in
func LoginURL(original string) string {
	if original == "" || strings.HasPrefix(original, LoginPath) {
		return LoginPath
	}

	return LoginPath + "?redirect=" + url.QueryEscape(original)
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if response.IsSessionError(err) {
		m.loginRedirect(c, err)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

// loginRedirect sends console views to the login route and answers JSON routes with a 401
// naming the same route. The original path is preserved either way.
func (m *ErrorMiddleware) loginRedirect(c echo.Context, err error) {
	req := c.Request()
	code, message := domainerrors.ErrNotAuthenticated.ErrorCode(), domainerrors.ErrNotAuthenticated.Message()
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		code, message = domainerrors.ErrSessionExpired.ErrorCode(), domainerrors.ErrSessionExpired.Message()
	}

	original := req.URL.RequestURI()
	if referer := req.Header.Get("X-Console-Path"); referer != "" && strings.HasPrefix(referer, "/") {
		original = referer
	}
	target := LoginURL(original)

	if req.Method == http.MethodGet && !isJSONRoute(req.URL.Path) && req.URL.Path != LoginPath {
		_ = c.Redirect(http.StatusFound, target)

		return
	}

	_ = response.LoginRequired(c, code, message, target)
}

func isJSONRoute(path string) bool {
	for _, prefix := range jsonPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
