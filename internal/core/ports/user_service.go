package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CreateUserInput carries the data needed to provision a user account.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UserService defines user provisioning use cases. All of them are
// restricted to administrators at the routing layer.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	SetStatus(ctx context.Context, id string, status domain.UserStatus) error
	ResetPassword(ctx context.Context, id string, newPassword string) error
}
