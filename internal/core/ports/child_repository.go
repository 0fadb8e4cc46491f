package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// ChildRepository defines persistence operations for children.
type ChildRepository interface {
	List(ctx context.Context) ([]domain.Child, error)
	ListByTutor(ctx context.Context, tutorID string) ([]domain.Child, error)
	FindByID(ctx context.Context, id string) (*domain.Child, error)
	Create(ctx context.Context, c *domain.Child) (string, error)
	Update(ctx context.Context, c *domain.Child) error
	Delete(ctx context.Context, id string) error
	// LinkTutor associates an existing tutor with the child.
	LinkTutor(ctx context.Context, link *domain.ChildTutor) error
}
