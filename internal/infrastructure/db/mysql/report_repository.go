package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

const procReportsCoverage = "sp_reports_coverage"

// ReportRepository reads aggregate reports. Voided doses are excluded by
// the procedures themselves.
type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) Coverage(ctx context.Context, f ports.CoverageFilter) ([]domain.CoverageRow, error) {
	rows, err := r.store.Query(ctx, procReportsCoverage,
		nullString(f.CenterID), f.From.Format("2006-01-02"), f.To.Format("2006-01-02"))
	if err != nil {
		return nil, r.store.Err("report", err)
	}
	defer rows.Close()

	var out []domain.CoverageRow
	for rows.Next() {
		var row domain.CoverageRow
		if err := rows.Scan(&row.CenterID, &row.CenterName, &row.VaccineID,
			&row.VaccineName, &row.DosesApplied); err != nil {
			return nil, r.store.Err("report", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("report", err)
	}
	return out, nil
}
