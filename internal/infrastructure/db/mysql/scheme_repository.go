package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procSchemesList   = "sp_schemes_list"
	procSchemesGet    = "sp_schemes_get"
	procSchemesCreate = "sp_schemes_create"
	procSchemesUpdate = "sp_schemes_update"
	procSchemesDelete = "sp_schemes_delete"
)

// SchemeRepository persists vaccination calendar entries.
type SchemeRepository struct {
	store *Store
}

func NewSchemeRepository(store *Store) *SchemeRepository {
	return &SchemeRepository{store: store}
}

func (r *SchemeRepository) List(ctx context.Context, countryID string) ([]domain.SchemeEntry, error) {
	rows, err := r.store.Query(ctx, procSchemesList, nullString(countryID))
	if err != nil {
		return nil, r.store.Err("scheme", err)
	}
	defer rows.Close()

	var out []domain.SchemeEntry
	for rows.Next() {
		var e domain.SchemeEntry
		if err := rows.Scan(&e.ID, &e.CountryID, &e.VaccineID, &e.DoseNumber, &e.AgeMonths); err != nil {
			return nil, r.store.Err("scheme", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("scheme", err)
	}
	return out, nil
}

func (r *SchemeRepository) FindByID(ctx context.Context, id string) (*domain.SchemeEntry, error) {
	var e domain.SchemeEntry
	err := r.store.QueryRow(ctx, procSchemesGet, id).Scan(
		&e.ID, &e.CountryID, &e.VaccineID, &e.DoseNumber, &e.AgeMonths)
	if err != nil {
		return nil, r.store.Err("scheme", err)
	}
	return &e, nil
}

func (r *SchemeRepository) Create(ctx context.Context, e *domain.SchemeEntry) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procSchemesCreate, e.CountryID, e.VaccineID, e.DoseNumber, e.AgeMonths).Scan(&id)
	if err != nil {
		return "", r.store.Err("scheme", err)
	}
	return id, nil
}

func (r *SchemeRepository) Update(ctx context.Context, e *domain.SchemeEntry) error {
	var touched string
	err := r.store.QueryRow(ctx, procSchemesUpdate, e.ID, e.CountryID, e.VaccineID, e.DoseNumber, e.AgeMonths).Scan(&touched)
	return r.store.Err("scheme", err)
}

func (r *SchemeRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procSchemesDelete, id).Scan(&touched)
	return r.store.Err("scheme", err)
}
