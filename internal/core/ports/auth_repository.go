package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// AuthRepository defines the interface for user authentication persistence.
type AuthRepository interface {
	// FindByUsername returns the full user row, password hash included.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
