package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CenterInput carries the mutable fields of a health center.
type CenterInput struct {
	Name      string
	Address   string
	Phone     string
	CountryID string
	Status    string
}

// CenterService defines use cases for health centers.
type CenterService interface {
	List(ctx context.Context, countryID string) ([]domain.HealthCenter, error)
	Get(ctx context.Context, id string) (*domain.HealthCenter, error)
	Create(ctx context.Context, in CenterInput) (string, error)
	Update(ctx context.Context, id string, in CenterInput) error
	Delete(ctx context.Context, id string) error
}
