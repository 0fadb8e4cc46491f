package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procCountriesList   = "sp_countries_list"
	procCountriesGet    = "sp_countries_get"
	procCountriesCreate = "sp_countries_create"
	procCountriesUpdate = "sp_countries_update"
	procCountriesDelete = "sp_countries_delete"
)

// CountryRepository persists the country catalog.
type CountryRepository struct {
	store *Store
}

func NewCountryRepository(store *Store) *CountryRepository {
	return &CountryRepository{store: store}
}

func (r *CountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.store.Query(ctx, procCountriesList)
	if err != nil {
		return nil, r.store.Err("country", err)
	}
	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, r.store.Err("country", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("country", err)
	}
	return out, nil
}

func (r *CountryRepository) FindByID(ctx context.Context, id string) (*domain.Country, error) {
	var c domain.Country
	err := r.store.QueryRow(ctx, procCountriesGet, id).Scan(&c.ID, &c.Name, &c.Code)
	if err != nil {
		return nil, r.store.Err("country", err)
	}
	return &c, nil
}

func (r *CountryRepository) Create(ctx context.Context, c *domain.Country) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procCountriesCreate, c.Name, c.Code).Scan(&id)
	if err != nil {
		return "", r.store.Err("country", err)
	}
	return id, nil
}

func (r *CountryRepository) Update(ctx context.Context, c *domain.Country) error {
	var touched string
	err := r.store.QueryRow(ctx, procCountriesUpdate, c.ID, c.Name, c.Code).Scan(&touched)
	return r.store.Err("country", err)
}

func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procCountriesDelete, id).Scan(&touched)
	return r.store.Err("country", err)
}
