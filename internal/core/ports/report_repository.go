package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// CoverageFilter selects the slice of vaccinations to aggregate.
// An empty CenterID covers all centers.
type CoverageFilter struct {
	CenterID string
	From     time.Time
	To       time.Time
}

// ReportRepository defines read operations for aggregate reports.
type ReportRepository interface {
	Coverage(ctx context.Context, f CoverageFilter) ([]domain.CoverageRow, error)
}
