package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// SchemeRepository defines persistence operations for vaccination calendars.
type SchemeRepository interface {
	// List returns calendar entries, optionally filtered by country.
	// An empty countryID means no filter.
	List(ctx context.Context, countryID string) ([]domain.SchemeEntry, error)
	FindByID(ctx context.Context, id string) (*domain.SchemeEntry, error)
	Create(ctx context.Context, e *domain.SchemeEntry) (string, error)
	Update(ctx context.Context, e *domain.SchemeEntry) error
	Delete(ctx context.Context, id string) error
}
