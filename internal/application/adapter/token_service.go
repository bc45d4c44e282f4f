// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair bundles the access token with its refresh counterpart.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims carries the identity asserted by a verified JWT.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues, verifies and revokes JWT session tokens.
type TokenService interface {
	// GenerateTokenPair issues a fresh access and refresh token pair for the user.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken verifies an access token and extracts its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token and extracts its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a single refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserTokens revokes every refresh token held by the user.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error

	// IsRefreshTokenValid reports whether the refresh token has not been revoked.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}
