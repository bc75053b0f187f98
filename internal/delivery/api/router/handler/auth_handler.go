package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the login flow
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC, logger: params.Logger}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for creating an operator account
type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// SessionResponse is the session with the route to continue from
type SessionResponse struct {
	Session  entity.SessionInfo `json:"session"`
	Redirect string             `json:"redirect,omitempty"`
}

// Status resolves the session state against the backend
func (h *AuthHandler) Status(c echo.Context) error {
	info, err := h.authUC.CheckStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// Me returns the current session without contacting the backend
func (h *AuthHandler) Me(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.authUC.Current())
}

// Login signs the operator in and echoes the redirect target of the login route
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	info, err := h.authUC.Login(c.Request().Context(), entity.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Session:  info,
		Redirect: redirectTarget(c.QueryParam("redirect")),
	})
}

// Register creates an operator account and signs it in
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	info, err := h.authUC.Register(c.Request().Context(), entity.Registration{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SessionResponse{
		Session:  info,
		Redirect: redirectTarget(c.QueryParam("redirect")),
	})
}

// Logout ends the session. The local token is gone even when the backend call fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Session:  h.authUC.Current(),
		Redirect: "/login",
	})
}

// redirectTarget accepts only local paths, defaulting to the order grid.
func redirectTarget(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/login") {
		return "/"
	}

	return target
}
