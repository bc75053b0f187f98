package backend

import (
	"context"
	"net/http"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates the backend-backed AuthRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Status(ctx context.Context) (*entity.AuthStatus, error) {
	var status entity.AuthStatus
	err := r.client.do(ctx, request{method: http.MethodGet, path: "/api/auth/status", anonymous: true}, &status)
	if err != nil {
		return nil, err
	}

	return &status, nil
}

func (r *authRepository) Login(ctx context.Context, credentials entity.Credentials) (*entity.AuthResult, error) {
	return r.authenticate(ctx, "/api/auth/login", credentials)
}

func (r *authRepository) Register(ctx context.Context, registration entity.Registration) (*entity.AuthResult, error) {
	return r.authenticate(ctx, "/api/auth/register", registration)
}

func (r *authRepository) authenticate(ctx context.Context, path string, body any) (*entity.AuthResult, error) {
	var result entity.AuthResult
	err := r.client.do(ctx, request{method: http.MethodPost, path: path, body: body, anonymous: true}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *authRepository) Me(ctx context.Context) (*entity.User, error) {
	var payload struct {
		User *entity.User `json:"user"`
	}
	if err := r.client.get(ctx, "/api/auth/me", nil, &payload); err != nil {
		return nil, err
	}

	return payload.User, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	return r.client.post(ctx, "/api/auth/logout", nil, nil)
}
