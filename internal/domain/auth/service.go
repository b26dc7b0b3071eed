package auth

import "context"

// AuthService handles credential login and refresh token rotation.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Refresh rotates a refresh token: the old token is revoked and a new
	// access/refresh pair is issued.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
