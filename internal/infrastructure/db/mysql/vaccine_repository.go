package mysql

import (
	"context"
	"database/sql"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procVaccinesList   = "sp_vaccines_list"
	procVaccinesGet    = "sp_vaccines_get"
	procVaccinesCreate = "sp_vaccines_create"
	procVaccinesUpdate = "sp_vaccines_update"
	procVaccinesDelete = "sp_vaccines_delete"
)

// VaccineRepository persists the vaccine catalog.
type VaccineRepository struct {
	store *Store
}

func NewVaccineRepository(store *Store) *VaccineRepository {
	return &VaccineRepository{store: store}
}

func scanVaccine(scan func(...any) error) (domain.Vaccine, error) {
	var v domain.Vaccine
	var desc sql.NullString
	if err := scan(&v.ID, &v.Name, &desc, &v.Doses); err != nil {
		return domain.Vaccine{}, err
	}
	v.Description = desc.String
	return v, nil
}

func (r *VaccineRepository) List(ctx context.Context) ([]domain.Vaccine, error) {
	rows, err := r.store.Query(ctx, procVaccinesList)
	if err != nil {
		return nil, r.store.Err("vaccine", err)
	}
	defer rows.Close()

	var out []domain.Vaccine
	for rows.Next() {
		v, err := scanVaccine(rows.Scan)
		if err != nil {
			return nil, r.store.Err("vaccine", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("vaccine", err)
	}
	return out, nil
}

func (r *VaccineRepository) FindByID(ctx context.Context, id string) (*domain.Vaccine, error) {
	v, err := scanVaccine(r.store.QueryRow(ctx, procVaccinesGet, id).Scan)
	if err != nil {
		return nil, r.store.Err("vaccine", err)
	}
	return &v, nil
}

func (r *VaccineRepository) Create(ctx context.Context, v *domain.Vaccine) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procVaccinesCreate, v.Name, nullString(v.Description), v.Doses).Scan(&id)
	if err != nil {
		return "", r.store.Err("vaccine", err)
	}
	return id, nil
}

func (r *VaccineRepository) Update(ctx context.Context, v *domain.Vaccine) error {
	var touched string
	err := r.store.QueryRow(ctx, procVaccinesUpdate, v.ID, v.Name, nullString(v.Description), v.Doses).Scan(&touched)
	return r.store.Err("vaccine", err)
}

func (r *VaccineRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procVaccinesDelete, id).Scan(&touched)
	return r.store.Err("vaccine", err)
}
