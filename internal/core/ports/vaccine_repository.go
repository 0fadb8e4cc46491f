package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// VaccineRepository defines persistence operations for the vaccine catalog.
type VaccineRepository interface {
	List(ctx context.Context) ([]domain.Vaccine, error)
	FindByID(ctx context.Context, id string) (*domain.Vaccine, error)
	Create(ctx context.Context, v *domain.Vaccine) (string, error)
	Update(ctx context.Context, v *domain.Vaccine) error
	Delete(ctx context.Context, id string) error
}

// LotRepository defines persistence operations for vaccine lots.
type LotRepository interface {
	ListByVaccine(ctx context.Context, vaccineID string) ([]domain.Lot, error)
	FindByID(ctx context.Context, id string) (*domain.Lot, error)
	Create(ctx context.Context, l *domain.Lot) (string, error)
	Update(ctx context.Context, l *domain.Lot) error
	Delete(ctx context.Context, id string) error
}
