package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// VaccinationRepository defines persistence operations for applied doses.
type VaccinationRepository interface {
	// Create records an applied dose and returns the generated id. The
	// store enforces lot stock, lot expiry and duplicate-dose rules.
	Create(ctx context.Context, v *domain.Vaccination) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Vaccination, error)
	HistoryByChild(ctx context.Context, childID string) ([]domain.HistoryEntry, error)
	// Void marks a dose as applied in error. The row is kept for audit.
	Void(ctx context.Context, id string) error
}
