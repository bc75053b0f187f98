package service

import (
	"context"
	"time"
)

// TokenStore persists the operator bearer token between runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// InvalidationListener is notified once per invalidated token.
type InvalidationListener func(ctx context.Context, token string)

// Session holds the bearer token attached to backend requests.
type Session interface {
	// Token returns the current token, "" when signed out.
	Token() string

	// Set replaces the token and persists it.
	Set(ctx context.Context, token string) error

	// Clear drops the token unconditionally.
	Clear(ctx context.Context) error

	// Invalidate drops the token only if it is still the given one, and reports whether it did.
	// Listeners fire only when it returns true.
	Invalidate(ctx context.Context, token string) bool

	// OnInvalidate registers a listener for Invalidate.
	OnInvalidate(listener InvalidationListener)

	// ExpiresAt returns the exp claim of the current token if it carries one.
	ExpiresAt() (time.Time, bool)
}
