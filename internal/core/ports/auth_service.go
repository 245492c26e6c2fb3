package ports

import (
	"context"
	"time"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// TokenClaims is what a verified access token says about its bearer.
type TokenClaims struct {
	Identity  domain.Identity
	TokenID   string
	ExpiresAt time.Time
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, claims TokenClaims) error
	Verify(ctx context.Context, token string) (TokenClaims, error)
}

// TokenDenylist remembers revoked token ids until they would expire anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
