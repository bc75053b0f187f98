// Package repository defines the interfaces for the backend data layer.
// The console keeps no database; every repository is served by the backend API.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// AuthRepository defines the backend authentication operations.
type AuthRepository interface {
	// Status reports whether the backend enforces authentication.
	Status(ctx context.Context) (*entity.AuthStatus, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, credentials entity.Credentials) (*entity.AuthResult, error)

	// Register creates an operator account and returns its token.
	Register(ctx context.Context, registration entity.Registration) (*entity.AuthResult, error)

	// Me returns the operator the current token belongs to.
	Me(ctx context.Context) (*entity.User, error)

	// Logout ends the backend session of the current token.
	Logout(ctx context.Context) error
}
