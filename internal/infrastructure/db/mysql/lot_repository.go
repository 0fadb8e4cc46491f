package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procLotsListByVaccine = "sp_lots_list_by_vaccine"
	procLotsGet           = "sp_lots_get"
	procLotsCreate        = "sp_lots_create"
	procLotsUpdate        = "sp_lots_update"
	procLotsDelete        = "sp_lots_delete"
)

// LotRepository persists vaccine lots. Stock decrements happen inside the
// vaccination procedures, not here.
type LotRepository struct {
	store *Store
}

func NewLotRepository(store *Store) *LotRepository {
	return &LotRepository{store: store}
}

func (r *LotRepository) ListByVaccine(ctx context.Context, vaccineID string) ([]domain.Lot, error) {
	rows, err := r.store.Query(ctx, procLotsListByVaccine, vaccineID)
	if err != nil {
		return nil, r.store.Err("lot", err)
	}
	defer rows.Close()

	var out []domain.Lot
	for rows.Next() {
		var l domain.Lot
		if err := rows.Scan(&l.ID, &l.VaccineID, &l.LotNumber, &l.Quantity, &l.ExpiryDate, &l.CreatedAt); err != nil {
			return nil, r.store.Err("lot", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("lot", err)
	}
	return out, nil
}

func (r *LotRepository) FindByID(ctx context.Context, id string) (*domain.Lot, error) {
	var l domain.Lot
	err := r.store.QueryRow(ctx, procLotsGet, id).Scan(
		&l.ID, &l.VaccineID, &l.LotNumber, &l.Quantity, &l.ExpiryDate, &l.CreatedAt)
	if err != nil {
		return nil, r.store.Err("lot", err)
	}
	return &l, nil
}

func (r *LotRepository) Create(ctx context.Context, l *domain.Lot) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procLotsCreate, l.VaccineID, l.LotNumber, l.Quantity, l.ExpiryDate).Scan(&id)
	if err != nil {
		return "", r.store.Err("lot", err)
	}
	return id, nil
}

func (r *LotRepository) Update(ctx context.Context, l *domain.Lot) error {
	var touched string
	err := r.store.QueryRow(ctx, procLotsUpdate, l.ID, l.LotNumber, l.Quantity, l.ExpiryDate).Scan(&touched)
	return r.store.Err("lot", err)
}

func (r *LotRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procLotsDelete, id).Scan(&touched)
	return r.store.Err("lot", err)
}
