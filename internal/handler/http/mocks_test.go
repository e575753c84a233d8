package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	issueTokenFn   func(ctx context.Context, user models.User) (string, error)
	authenticateFn func(ctx context.Context, header string) models.AuthenticationContext
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) IssueToken(ctx context.Context, user models.User) (string, error) {
	return m.issueTokenFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, header string) models.AuthenticationContext {
	if m.authenticateFn == nil {
		return models.Anonymous()
	}
	return m.authenticateFn(ctx, header)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createFn  func(ctx context.Context, creds models.Credentials) (models.User, error)
	profileFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserService) Create(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.createFn(ctx, creds)
}

func (m *mockUserService) Profile(ctx context.Context, username string) (models.User, error) {
	return m.profileFn(ctx, username)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newMockedHandler builds a Handler over mocked services with the default
// route policy.
func newMockedHandler(t *testing.T, auth *mockAuthService, users *mockUserService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if users == nil {
		users = &mockUserService{}
	}

	policy, err := NewRoutePolicy(DefaultRoutePolicy())
	require.NoError(t, err)

	return NewHandler(&service.Services{
		AuthService: auth,
		UserService: users,
	}, policy, logger.Nop())
}

// authenticatedAs installs an authentication context for username in ctx of
// every request, as if a valid token had been presented.
func authenticatedAs(username string) *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(context.Context, string) models.AuthenticationContext {
			return models.NewAuthenticationContext(username)
		},
	}
}
