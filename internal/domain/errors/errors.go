package errors

import (
	"fmt"
	"net/http"

	"backoffice/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors of the same business code, so copies made by WithDetails
// and WithMessage still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_FAILED",
		"Registration failed",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session expired, please log in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Login required",
		"",
	)

	// Purchase order errors
	ErrUnmappedVendor = NewBaseError(
		http.StatusBadRequest,
		"UNMAPPED_VENDOR",
		"Vendor has no purchase order mapping",
		"",
	)

	ErrPurchaseOrderFailed = NewBaseError(
		http.StatusBadGateway,
		"PURCHASE_ORDER_FAILED",
		"Failed to create purchase order",
		"",
	)

	// Export errors
	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"Failed to build export",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Backend errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Backend API is unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// BackendError is a non-success answer from the backend API, implementing the AppError interface
type BackendError struct {
	status  int
	message string
	path    string
}

// NewBackendError creates an error for a backend response with the given status.
// message is the backend's own message field, possibly empty.
func NewBackendError(status int, message, path string) AppError {
	return &BackendError{
		status:  status,
		message: message,
		path:    path,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("backend %s returned %d", e.path, e.status)
	}

	return fmt.Sprintf("backend %s returned %d: %s", e.path, e.status, e.message)
}

// Status returns the backend HTTP status
func (e *BackendError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code. Backend 4xx answers pass through, others become 502.
func (e *BackendError) HTTPCode() int {
	if e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError {
		return e.status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	if e.status == http.StatusNotFound {
		return "NOT_FOUND"
	}

	return "BACKEND_ERROR"
}

// Message returns the backend message, or a generic one
func (e *BackendError) Message() string {
	if e.message != "" {
		return e.message
	}

	return http.StatusText(e.HTTPCode())
}

// BackendMessage returns the raw message field from the backend, possibly empty
func (e *BackendError) BackendMessage() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.path
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	be, ok := errors.AsType[*BackendError](err)

	return ok && be.status == http.StatusNotFound
}
