package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CountryInput carries the mutable fields of a country.
type CountryInput struct {
	Name string
	Code string
}

// CountryService defines use cases for the country catalog.
type CountryService interface {
	List(ctx context.Context) ([]domain.Country, error)
	Get(ctx context.Context, id string) (*domain.Country, error)
	Create(ctx context.Context, in CountryInput) (string, error)
	Update(ctx context.Context, id string, in CountryInput) error
	Delete(ctx context.Context, id string) error
}
