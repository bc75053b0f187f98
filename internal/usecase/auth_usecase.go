package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// AuthUsecase drives the operator session state machine.
type AuthUsecase interface {
	// CheckStatus asks the backend whether auth is enforced and verifies a stored token.
	CheckStatus(ctx context.Context) (entity.SessionInfo, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials entity.Credentials) (entity.SessionInfo, error)

	// Register creates an operator account and signs it in.
	Register(ctx context.Context, registration entity.Registration) (entity.SessionInfo, error)

	// Logout ends the session. The local token is cleared even if the backend call fails.
	Logout(ctx context.Context) error

	// Current returns the session snapshot without contacting the backend.
	Current() entity.SessionInfo
}
