package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/punchly/punchly-backend-go/internal/domain/auth"
	"github.com/punchly/punchly-backend-go/internal/domain/user"
	"github.com/punchly/punchly-backend-go/internal/pkg/jwt"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestAuthService() auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(newFakeUserRepo(), jwtService)
}

func registerRequest(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     "MANAGER",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "Bearer", registered.TokenType)

	loggedIn, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "anna@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("anna@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	req := registerRequest("anna@example.com")
	req.Password = "short"

	_, err := svc.Register(ctx, req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked by the rotation
	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, registered.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.RefreshToken))

	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
