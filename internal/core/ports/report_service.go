package ports

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// ReportService defines reporting use cases.
type ReportService interface {
	Coverage(ctx context.Context, f CoverageFilter) ([]domain.CoverageRow, error)
}
