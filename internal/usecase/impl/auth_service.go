package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for the auth service
type AuthServiceParams struct {
	fx.In

	AuthRepo  repository.AuthRepository
	Session   service.Session
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type authService struct {
	authRepo repository.AuthRepository
	session  service.Session
	audit    *auditor
	logger   *slog.Logger

	mu      sync.Mutex
	state   entity.SessionState
	user    *entity.User
	assumed bool
}

// NewAuthService creates the auth session manager. A token invalidated by a 401/403
// moves the state to unauthenticated exactly once.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	s := &authService{
		authRepo: params.AuthRepo,
		session:  params.Session,
		audit:    newAuditor(params.Publisher, params.Logger),
		logger:   params.Logger,
		state:    entity.SessionUnknown,
	}
	params.Session.OnInvalidate(s.onInvalidate)

	return s
}

func (s *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *authService) CheckStatus(ctx context.Context) (entity.SessionInfo, error) {
	status, err := s.authRepo.Status(ctx)
	if err != nil {
		// An unreachable status endpoint is treated as auth being disabled.
		s.log(ctx).Warn("Auth status check failed, treating auth as disabled", slog.Any("error", err))
		s.mu.Lock()
		s.state, s.user, s.assumed = entity.SessionDisabled, nil, true
		s.mu.Unlock()

		return s.Current(), nil
	}

	if !status.AuthEnabled {
		s.setState(entity.SessionDisabled, nil)

		return s.Current(), nil
	}

	if s.session.Token() == "" {
		s.setState(entity.SessionUnauthenticated, nil)

		return s.Current(), nil
	}

	user, err := s.authRepo.Me(ctx)
	if err != nil {
		s.log(ctx).Info("Stored token rejected, signing out", slog.Any("error", err))
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			return s.Current(), errors.Wrap(clearErr, "failed to clear rejected token")
		}
		s.setState(entity.SessionUnauthenticated, nil)

		return s.Current(), nil
	}

	s.setState(entity.SessionAuthenticated, user)

	return s.Current(), nil
}

func (s *authService) Login(ctx context.Context, credentials entity.Credentials) (entity.SessionInfo, error) {
	if strings.TrimSpace(credentials.Username) == "" || credentials.Password == "" {
		return s.Current(), domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	result, err := s.authRepo.Login(ctx, credentials)
	if err != nil {
		s.log(ctx).Warn("Login failed", slog.String("username", credentials.Username), slog.Any("error", err))

		return s.Current(), authFailure(domainerrors.ErrLoginFailed, err)
	}

	if err := s.signIn(ctx, result, domainerrors.ErrLoginFailed); err != nil {
		return s.Current(), err
	}

	s.audit.record(ctx, service.AuditEvent{Action: service.AuditLogin, Actor: credentials.Username})

	return s.Current(), nil
}

func (s *authService) Register(ctx context.Context, registration entity.Registration) (entity.SessionInfo, error) {
	if strings.TrimSpace(registration.Username) == "" || registration.Password == "" {
		return s.Current(), domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	result, err := s.authRepo.Register(ctx, registration)
	if err != nil {
		s.log(ctx).Warn("Registration failed", slog.String("username", registration.Username), slog.Any("error", err))

		return s.Current(), authFailure(domainerrors.ErrRegistrationFailed, err)
	}

	if err := s.signIn(ctx, result, domainerrors.ErrRegistrationFailed); err != nil {
		return s.Current(), err
	}

	return s.Current(), nil
}

func (s *authService) signIn(ctx context.Context, result *entity.AuthResult, failure *domainerrors.BaseError) error {
	if result == nil || result.Token == "" {
		return failure
	}

	if err := s.session.Set(ctx, result.Token); err != nil {
		return errors.Wrap(err, "failed to store token")
	}
	s.setState(entity.SessionAuthenticated, result.User)

	return nil
}

// authFailure uses the backend's message when it sent one, else the generic fallback.
func authFailure(fallback *domainerrors.BaseError, err error) error {
	if be, ok := errors.AsType[*domainerrors.BackendError](err); ok && be.BackendMessage() != "" {
		return fallback.WithMessage(be.BackendMessage())
	}

	return fallback
}

func (s *authService) Logout(ctx context.Context) error {
	actor := s.Current().User.DisplayName()

	if s.session.Token() != "" {
		if err := s.authRepo.Logout(ctx); err != nil {
			s.log(ctx).Warn("Backend logout failed", slog.Any("error", err))
		}
	}

	err := s.session.Clear(ctx)
	s.signedOut()
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditLogout, Actor: actor})

	return errors.Wrap(err, "failed to clear token")
}

func (s *authService) Current() entity.SessionInfo {
	s.mu.Lock()
	info := entity.SessionInfo{State: s.state, User: s.user, Assumed: s.assumed}
	s.mu.Unlock()

	if info.State == entity.SessionAuthenticated {
		if exp, ok := s.session.ExpiresAt(); ok {
			info.ExpiresAt = &exp
		}
	}

	return info
}

func (s *authService) onInvalidate(ctx context.Context, _ string) {
	actor := s.Current().User.DisplayName()
	s.signedOut()
	s.log(ctx).Info("Session expired, signed out")
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditSessionExpired, Actor: actor})
}

// signedOut moves an enforced session to unauthenticated. A disabled session stays public.
func (s *authService) signedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if s.state != entity.SessionDisabled {
		s.state = entity.SessionUnauthenticated
	}
}

func (s *authService) setState(state entity.SessionState, user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.user = user
	s.assumed = false
}
