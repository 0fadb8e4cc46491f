package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// UserRepository defines persistence operations for application users.
type UserRepository interface {
	// Create inserts a new user and returns the generated id.
	Create(ctx context.Context, u *domain.User) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	SetStatus(ctx context.Context, id string, status domain.UserStatus) error
	SetPassword(ctx context.Context, id string, passwordHash string) error
}
