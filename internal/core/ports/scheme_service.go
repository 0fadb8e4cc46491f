package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// SchemeInput carries the mutable fields of a calendar entry.
type SchemeInput struct {
	CountryID  string
	VaccineID  string
	DoseNumber int
	AgeMonths  int
}

// SchemeService defines use cases for vaccination calendars.
type SchemeService interface {
	List(ctx context.Context, countryID string) ([]domain.SchemeEntry, error)
	Get(ctx context.Context, id string) (*domain.SchemeEntry, error)
	Create(ctx context.Context, in SchemeInput) (string, error)
	Update(ctx context.Context, id string, in SchemeInput) error
	Delete(ctx context.Context, id string) error
}
