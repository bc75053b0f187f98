package middleware

import (
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware gates console routes on the operator session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// RequireSession lets a request through while auth is disabled or the operator is signed in.
// The session state is resolved against the backend on the first gated request and
// again while a disabled state was only assumed after a failed status check.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		info := m.authUC.Current()
		if info.State == entity.SessionUnknown || info.Assumed {
			var err error
			if info, err = m.authUC.CheckStatus(c.Request().Context()); err != nil {
				return err
			}
		}

		switch info.State {
		case entity.SessionDisabled:
			return next(c)
		case entity.SessionAuthenticated:
			deliverycontext.SetOperator(c, info.User.DisplayName())

			return next(c)
		default:
			return domainerrors.ErrNotAuthenticated
		}
	}
}

// GetOperator returns the operator name set by RequireSession.
func GetOperator(c echo.Context) (string, bool) {
	operator, ok := c.Get(string(deliverycontext.KeyOperator)).(string)

	return operator, ok && operator != ""
}
