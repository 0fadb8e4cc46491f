package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// LoginInput carries the credentials presented at /login.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned after a successful authentication. The password
// hash never leaves the service layer.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.Principal
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// Logout revokes the token id until expiresAt. A no-op when no
	// denylist is configured.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
