package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type reportService struct {
	repo ports.ReportRepository
}

// NewReportService wires the reporting use cases.
func NewReportService(repo ports.ReportRepository) ports.ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Coverage(ctx context.Context, f ports.CoverageFilter) ([]domain.CoverageRow, error) {
	if f.To.Before(f.From) {
		return nil, domain.NewValidation([]domain.FieldError{
			{Field: "to", Message: "must not be before from"},
		})
	}
	return s.repo.Coverage(ctx, f)
}
