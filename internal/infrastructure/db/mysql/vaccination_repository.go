package mysql

import (
	"context"
	"database/sql"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procVaccinationsCreate  = "sp_vaccinations_create"
	procVaccinationsGet     = "sp_vaccinations_get"
	procVaccinationsHistory = "sp_vaccinations_history_by_child"
	procVaccinationsVoid    = "sp_vaccinations_void"
)

// VaccinationRepository persists applied doses. The create procedure
// decrements lot stock and raises on expired lots, empty lots and duplicate
// doses; the repository passes those rejections through untouched.
type VaccinationRepository struct {
	store *Store
}

func NewVaccinationRepository(store *Store) *VaccinationRepository {
	return &VaccinationRepository{store: store}
}

func (r *VaccinationRepository) Create(ctx context.Context, v *domain.Vaccination) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procVaccinationsCreate,
		v.ChildID, v.LotID, nullString(v.SchemeID), v.CenterID, v.AppliedBy, v.AppliedAt).Scan(&id)
	if err != nil {
		return "", r.store.Err("vaccination", err)
	}
	return id, nil
}

func (r *VaccinationRepository) FindByID(ctx context.Context, id string) (*domain.Vaccination, error) {
	var v domain.Vaccination
	var scheme sql.NullString
	err := r.store.QueryRow(ctx, procVaccinationsGet, id).Scan(
		&v.ID, &v.ChildID, &v.LotID, &scheme, &v.CenterID,
		&v.AppliedBy, &v.AppliedAt, &v.Voided, &v.CreatedAt)
	if err != nil {
		return nil, r.store.Err("vaccination", err)
	}
	v.SchemeID = scheme.String
	return &v, nil
}

func (r *VaccinationRepository) HistoryByChild(ctx context.Context, childID string) ([]domain.HistoryEntry, error) {
	rows, err := r.store.Query(ctx, procVaccinationsHistory, childID)
	if err != nil {
		return nil, r.store.Err("vaccination", err)
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var h domain.HistoryEntry
		if err := rows.Scan(&h.VaccinationID, &h.VaccineName, &h.DoseNumber,
			&h.LotNumber, &h.CenterName, &h.AppliedAt, &h.AppliedBy); err != nil {
			return nil, r.store.Err("vaccination", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("vaccination", err)
	}
	return out, nil
}

func (r *VaccinationRepository) Void(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procVaccinationsVoid, id).Scan(&touched)
	return r.store.Err("vaccination", err)
}
