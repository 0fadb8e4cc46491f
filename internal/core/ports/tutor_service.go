package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// TutorInput carries the mutable fields of a tutor.
type TutorInput struct {
	FirstName        string
	LastName         string
	IdentityDocument string
	Phone            string
	Email            string
}

// TutorService defines use cases for tutors.
type TutorService interface {
	List(ctx context.Context) ([]domain.Tutor, error)
	Get(ctx context.Context, id string) (*domain.Tutor, error)
	Create(ctx context.Context, in TutorInput) (string, error)
	Update(ctx context.Context, id string, in TutorInput) error
	Delete(ctx context.Context, id string) error
}
