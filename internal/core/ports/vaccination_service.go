package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// RecordVaccinationInput carries the data for one applied dose. AppliedBy is
// the authenticated user recording the dose, never client-supplied.
type RecordVaccinationInput struct {
	ChildID   string
	LotID     string
	SchemeID  string
	CenterID  string
	AppliedAt time.Time
	AppliedBy string
}

// VaccinationService defines use cases for applied doses.
type VaccinationService interface {
	Record(ctx context.Context, in RecordVaccinationInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Vaccination, error)
	HistoryByChild(ctx context.Context, childID string) ([]domain.HistoryEntry, error)
	Void(ctx context.Context, id string) error
}
