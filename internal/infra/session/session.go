// Package session keeps the operator bearer token for backend requests.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the session
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Store  service.TokenStore
	Logger *slog.Logger
}

type session struct {
	mu        sync.Mutex
	token     string
	store     service.TokenStore
	listeners []service.InvalidationListener
	logger    *slog.Logger
	now       func() time.Time
}

// New restores the persisted token. An expired token is discarded.
func New(params Params) (service.Session, error) {
	return newSession(params.Ctx, params.Store, params.Logger, time.Now)
}

func newSession(ctx context.Context, store service.TokenStore, logger *slog.Logger, now func() time.Time) (*session, error) {
	s := &session{store: store, logger: logger, now: now}

	token, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stored token")
	}

	if exp, ok := ExpiresAt(token); ok && !exp.After(now()) {
		logger.Info("Stored token expired, discarding", slog.Time("expires_at", exp))
		if err := store.Clear(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to clear expired token")
		}
		token = ""
	}
	s.token = token

	return s, nil
}

func (s *session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

func (s *session) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		return errors.Wrap(err, "failed to save token")
	}
	s.token = token

	return nil
}

func (s *session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	return errors.Wrap(s.store.Clear(ctx), "failed to clear token")
}

func (s *session) Invalidate(ctx context.Context, token string) bool {
	s.mu.Lock()
	if token == "" || s.token != token {
		s.mu.Unlock()

		return false
	}

	s.token = ""
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("Failed to clear invalidated token", slog.Any("error", err))
	}
	listeners := append([]service.InvalidationListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, token)
	}

	return true
}

func (s *session) OnInvalidate(listener service.InvalidationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *session) ExpiresAt() (time.Time, bool) {
	return ExpiresAt(s.Token())
}
