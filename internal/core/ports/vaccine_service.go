package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// VaccineInput carries the mutable fields of a vaccine.
type VaccineInput struct {
	Name        string
	Description string
	Doses       int
}

// VaccineService defines use cases for the vaccine catalog.
type VaccineService interface {
	List(ctx context.Context) ([]domain.Vaccine, error)
	Get(ctx context.Context, id string) (*domain.Vaccine, error)
	Create(ctx context.Context, in VaccineInput) (string, error)
	Update(ctx context.Context, id string, in VaccineInput) error
	Delete(ctx context.Context, id string) error
}

// LotInput carries the mutable fields of a vaccine lot.
type LotInput struct {
	VaccineID  string
	LotNumber  string
	Quantity   int
	ExpiryDate time.Time
}

// LotService defines use cases for vaccine lots.
type LotService interface {
	ListByVaccine(ctx context.Context, vaccineID string) ([]domain.Lot, error)
	Get(ctx context.Context, id string) (*domain.Lot, error)
	Create(ctx context.Context, in LotInput) (string, error)
	Update(ctx context.Context, id string, in LotInput) error
	Delete(ctx context.Context, id string) error
}
