package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// TutorRepository defines persistence operations for tutors.
type TutorRepository interface {
	List(ctx context.Context) ([]domain.Tutor, error)
	FindByID(ctx context.Context, id string) (*domain.Tutor, error)
	Create(ctx context.Context, t *domain.Tutor) (string, error)
	Update(ctx context.Context, t *domain.Tutor) error
	Delete(ctx context.Context, id string) error
}
