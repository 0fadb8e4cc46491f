package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CenterRepository defines persistence operations for health centers.
type CenterRepository interface {
	// List returns all centers, optionally filtered by country.
	// An empty countryID means no filter.
	List(ctx context.Context, countryID string) ([]domain.HealthCenter, error)
	FindByID(ctx context.Context, id string) (*domain.HealthCenter, error)
	Create(ctx context.Context, c *domain.HealthCenter) (string, error)
	Update(ctx context.Context, c *domain.HealthCenter) error
	Delete(ctx context.Context, id string) error
}
