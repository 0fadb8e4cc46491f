package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hash. A malformed hash verifies
	// as false, never as an error.
	Verify(plain, hash string) bool
}

// TokenClaims is the verified identity carried by an access token.
type TokenClaims struct {
	UserID    string
	Username  string
	Role      domain.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(p domain.Principal) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}

// TokenDenylist records revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
