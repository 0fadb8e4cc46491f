package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CountryRepository defines persistence operations for the country catalog.
type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
	FindByID(ctx context.Context, id string) (*domain.Country, error)
	Create(ctx context.Context, c *domain.Country) (string, error)
	Update(ctx context.Context, c *domain.Country) error
	Delete(ctx context.Context, id string) error
}
