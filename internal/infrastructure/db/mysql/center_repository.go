package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procCentersList   = "sp_centers_list"
	procCentersGet    = "sp_centers_get"
	procCentersCreate = "sp_centers_create"
	procCentersUpdate = "sp_centers_update"
	procCentersDelete = "sp_centers_delete"
)

// CenterRepository persists health centers.
type CenterRepository struct {
	store *Store
}

func NewCenterRepository(store *Store) *CenterRepository {
	return &CenterRepository{store: store}
}

func (r *CenterRepository) List(ctx context.Context, countryID string) ([]domain.HealthCenter, error) {
	rows, err := r.store.Query(ctx, procCentersList, nullString(countryID))
	if err != nil {
		return nil, r.store.Err("center", err)
	}
	defer rows.Close()

	var out []domain.HealthCenter
	for rows.Next() {
		var c domain.HealthCenter
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.CountryID, &c.Status, &c.CreatedAt); err != nil {
			return nil, r.store.Err("center", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("center", err)
	}
	return out, nil
}

func (r *CenterRepository) FindByID(ctx context.Context, id string) (*domain.HealthCenter, error) {
	var c domain.HealthCenter
	err := r.store.QueryRow(ctx, procCentersGet, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.CountryID, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, r.store.Err("center", err)
	}
	return &c, nil
}

func (r *CenterRepository) Create(ctx context.Context, c *domain.HealthCenter) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procCentersCreate, c.Name, c.Address, c.Phone, c.CountryID, c.Status).Scan(&id)
	if err != nil {
		return "", r.store.Err("center", err)
	}
	return id, nil
}

func (r *CenterRepository) Update(ctx context.Context, c *domain.HealthCenter) error {
	var touched string
	err := r.store.QueryRow(ctx, procCentersUpdate, c.ID, c.Name, c.Address, c.Phone, c.CountryID, c.Status).Scan(&touched)
	return r.store.Err("center", err)
}

func (r *CenterRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procCentersDelete, id).Scan(&touched)
	return r.store.Err("center", err)
}
