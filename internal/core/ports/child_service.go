package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// ChildInput carries the mutable fields of a child.
type ChildInput struct {
	FirstName        string
	LastName         string
	IdentityDocument string
	BirthDate        time.Time
	Gender           domain.Gender
	CountryID        string
}

// LinkTutorInput associates a tutor with a child.
type LinkTutorInput struct {
	TutorID      string
	Relationship string
}

// ChildService defines use cases for children.
type ChildService interface {
	List(ctx context.Context) ([]domain.Child, error)
	ListByTutor(ctx context.Context, tutorID string) ([]domain.Child, error)
	Get(ctx context.Context, id string) (*domain.Child, error)
	Create(ctx context.Context, in ChildInput) (string, error)
	Update(ctx context.Context, id string, in ChildInput) error
	Delete(ctx context.Context, id string) error
	LinkTutor(ctx context.Context, childID string, in LinkTutorInput) error
}
