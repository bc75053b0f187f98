package impl

import (
	"context"
	"sync"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/session"
	mockRepo "backoffice/internal/mocks/repository"
	mockService "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service   usecase.AuthUsecase
	authRepo  *mockRepo.MockAuthRepository
	session   service.Session
	publisher *mockService.MockEventPublisher
}

func createTestAuthService(t *testing.T, publisher *mockService.MockEventPublisher) authServiceFixtures {
	authRepo := mockRepo.NewMockAuthRepository(t)
	sess, err := session.New(session.Params{
		Ctx:    context.Background(),
		Store:  session.NewMemoryStore(),
		Logger: testLogger(),
	})
	require.NoError(t, err)

	svc := NewAuthService(AuthServiceParams{
		AuthRepo:  authRepo,
		Session:   sess,
		Publisher: publisher,
		Logger:    testLogger(),
	})

	return authServiceFixtures{
		service:   svc,
		authRepo:  authRepo,
		session:   sess,
		publisher: publisher,
	}
}

func TestAuthService_CheckStatus(t *testing.T) {
	user := &entity.User{ID: 7, Username: "dana", FirstName: "Dana"}

	tests := []struct {
		name      string
		token     string
		setup     func(repo *mockRepo.MockAuthRepository)
		wantState   entity.SessionState
		wantUser    *entity.User
		wantToken   string
		wantAssumed bool
	}{
		{
			name: "auth disabled",
			setup: func(repo *mockRepo.MockAuthRepository) {
				repo.EXPECT().Status(mock.Anything).Return(&entity.AuthStatus{AuthEnabled: false}, nil)
			},
			wantState: entity.SessionDisabled,
		},
		{
			name: "status unreachable is treated as disabled",
			setup: func(repo *mockRepo.MockAuthRepository) {
				repo.EXPECT().Status(mock.Anything).Return(nil, errors.New("connection refused"))
			},
			wantState:   entity.SessionDisabled,
			wantAssumed: true,
		},
		{
			name: "enabled without token",
			setup: func(repo *mockRepo.MockAuthRepository) {
				repo.EXPECT().Status(mock.Anything).Return(&entity.AuthStatus{AuthEnabled: true}, nil)
			},
			wantState: entity.SessionUnauthenticated,
		},
		{
			name:  "stored token verified",
			token: "tok",
			setup: func(repo *mockRepo.MockAuthRepository) {
				repo.EXPECT().Status(mock.Anything).Return(&entity.AuthStatus{AuthEnabled: true}, nil)
				repo.EXPECT().Me(mock.Anything).Return(user, nil)
			},
			wantState: entity.SessionAuthenticated,
			wantUser:  user,
			wantToken: "tok",
		},
		{
			name:  "stored token rejected is cleared",
			token: "tok",
			setup: func(repo *mockRepo.MockAuthRepository) {
				repo.EXPECT().Status(mock.Anything).Return(&entity.AuthStatus{AuthEnabled: true}, nil)
				repo.EXPECT().Me(mock.Anything).Return(nil, domainerrors.NewBackendError(401, "invalid token", "/api/auth/me"))
			},
			wantState: entity.SessionUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, quietPublisher(t))
			ctx := context.Background()
			if tt.token != "" {
				require.NoError(t, fx.session.Set(ctx, tt.token))
			}
			tt.setup(fx.authRepo)

			info, err := fx.service.CheckStatus(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, info.State)
			assert.Equal(t, tt.wantUser, info.User)
			assert.Equal(t, tt.wantToken, fx.session.Token())
			assert.Equal(t, tt.wantAssumed, info.Assumed)
		})
	}
}

func TestAuthService_CheckStatus_RecoversAfterFailedCheck(t *testing.T) {
	fx := createTestAuthService(t, quietPublisher(t))
	ctx := context.Background()

	fx.authRepo.EXPECT().Status(mock.Anything).Return(nil, errors.New("connection refused")).Once()
	fx.authRepo.EXPECT().Status(mock.Anything).Return(&entity.AuthStatus{AuthEnabled: true}, nil).Once()

	info, err := fx.service.CheckStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionDisabled, info.State)
	assert.True(t, fx.service.Current().Assumed)

	info, err = fx.service.CheckStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionUnauthenticated, info.State)
	assert.False(t, info.Assumed)
}

func TestAuthService_Login_StoresToken(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestAuthService(t, publisher)
	ctx := context.Background()

	creds := entity.Credentials{Username: "dana", Password: "secret1"}
	fx.authRepo.EXPECT().Login(ctx, creds).Return(&entity.AuthResult{
		Token: "tok-1",
		User:  &entity.User{ID: 7, Username: "dana"},
	}, nil)
	publisher.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.Action == service.AuditLogin && e.Actor == "dana" && e.EventID != ""
		})).
		Return(nil).
		Once()

	info, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionAuthenticated, info.State)
	assert.Equal(t, "dana", info.User.Username)
	assert.Equal(t, "tok-1", fx.session.Token())
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		creds   entity.Credentials
		repoErr error
		wantErr *domainerrors.BaseError
		wantMsg string
	}{
		{
			name:    "missing password",
			creds:   entity.Credentials{Username: "dana"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "backend message is surfaced",
			creds:   entity.Credentials{Username: "dana", Password: "wrong"},
			repoErr: domainerrors.NewBackendError(401, "Invalid username or password", "/api/auth/login"),
			wantErr: domainerrors.ErrLoginFailed,
			wantMsg: "Invalid username or password",
		},
		{
			name:    "transport error falls back to the generic message",
			creds:   entity.Credentials{Username: "dana", Password: "wrong"},
			repoErr: errors.New("connection reset"),
			wantErr: domainerrors.ErrLoginFailed,
			wantMsg: domainerrors.ErrLoginFailed.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, mockService.NewMockEventPublisher(t))
			ctx := context.Background()
			if tt.repoErr != nil {
				fx.authRepo.EXPECT().Login(ctx, tt.creds).Return(nil, tt.repoErr)
			}

			info, err := fx.service.Login(ctx, tt.creds)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				appErr, ok := err.(domainerrors.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, appErr.Message())
			}
			assert.NotEqual(t, entity.SessionAuthenticated, info.State)
			assert.Empty(t, fx.session.Token())
		})
	}
}

func TestAuthService_ConcurrentUnauthorizedLogsOutOnce(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestAuthService(t, publisher)
	ctx := context.Background()

	creds := entity.Credentials{Username: "dana", Password: "secret1"}
	fx.authRepo.EXPECT().Login(ctx, creds).Return(&entity.AuthResult{Token: "tok-1", User: &entity.User{Username: "dana"}}, nil)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(e *service.AuditEvent) bool { return e.Action == service.AuditLogin })).
		Return(nil).
		Once()
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(e *service.AuditEvent) bool { return e.Action == service.AuditSessionExpired })).
		Return(nil).
		Once()

	_, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)

	// Every in-flight request saw a 401 for the same token
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		invalidated int
	)
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fx.session.Invalidate(ctx, "tok-1") {
				mu.Lock()
				invalidated++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, invalidated)
	assert.Equal(t, entity.SessionUnauthenticated, fx.service.Current().State)
	assert.Nil(t, fx.service.Current().User)
	assert.Empty(t, fx.session.Token())
}

func TestAuthService_StaleTokenInvalidationIsIgnored(t *testing.T) {
	fx := createTestAuthService(t, quietPublisher(t))
	ctx := context.Background()

	creds := entity.Credentials{Username: "dana", Password: "secret1"}
	fx.authRepo.EXPECT().Login(ctx, creds).Return(&entity.AuthResult{Token: "tok-2"}, nil)
	_, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)

	// A late 401 for a token that was already replaced
	assert.False(t, fx.session.Invalidate(ctx, "tok-1"))
	assert.Equal(t, entity.SessionAuthenticated, fx.service.Current().State)
	assert.Equal(t, "tok-2", fx.session.Token())
}

func TestAuthService_Logout_ClearsTokenWhenBackendFails(t *testing.T) {
	fx := createTestAuthService(t, quietPublisher(t))
	ctx := context.Background()

	creds := entity.Credentials{Username: "dana", Password: "secret1"}
	fx.authRepo.EXPECT().Login(ctx, creds).Return(&entity.AuthResult{Token: "tok-1"}, nil)
	fx.authRepo.EXPECT().Logout(ctx).Return(errors.New("backend down"))

	_, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx))
	assert.Empty(t, fx.session.Token())
	assert.Equal(t, entity.SessionUnauthenticated, fx.service.Current().State)
}

func TestAuthService_DisabledSessionStaysPublic(t *testing.T) {
	fx := createTestAuthService(t, quietPublisher(t))
	ctx := context.Background()

	fx.authRepo.EXPECT().Status(ctx).Return(&entity.AuthStatus{AuthEnabled: false}, nil)
	_, err := fx.service.CheckStatus(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx))
	assert.True(t, fx.service.Current().IsPublic())
}
