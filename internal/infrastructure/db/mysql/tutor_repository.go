package mysql

import (
	"context"
	"database/sql"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procTutorsList   = "sp_tutors_list"
	procTutorsGet    = "sp_tutors_get"
	procTutorsCreate = "sp_tutors_create"
	procTutorsUpdate = "sp_tutors_update"
	procTutorsDelete = "sp_tutors_delete"
)

// TutorRepository persists tutors.
type TutorRepository struct {
	store *Store
}

func NewTutorRepository(store *Store) *TutorRepository {
	return &TutorRepository{store: store}
}

func scanTutor(scan func(...any) error) (domain.Tutor, error) {
	var t domain.Tutor
	var email sql.NullString
	if err := scan(&t.ID, &t.FirstName, &t.LastName, &t.IdentityDocument, &t.Phone, &email, &t.CreatedAt); err != nil {
		return domain.Tutor{}, err
	}
	t.Email = email.String
	return t, nil
}

func (r *TutorRepository) List(ctx context.Context) ([]domain.Tutor, error) {
	rows, err := r.store.Query(ctx, procTutorsList)
	if err != nil {
		return nil, r.store.Err("tutor", err)
	}
	defer rows.Close()

	var out []domain.Tutor
	for rows.Next() {
		t, err := scanTutor(rows.Scan)
		if err != nil {
			return nil, r.store.Err("tutor", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("tutor", err)
	}
	return out, nil
}

func (r *TutorRepository) FindByID(ctx context.Context, id string) (*domain.Tutor, error) {
	t, err := scanTutor(r.store.QueryRow(ctx, procTutorsGet, id).Scan)
	if err != nil {
		return nil, r.store.Err("tutor", err)
	}
	return &t, nil
}

func (r *TutorRepository) Create(ctx context.Context, t *domain.Tutor) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procTutorsCreate,
		t.FirstName, t.LastName, t.IdentityDocument, t.Phone, nullString(t.Email)).Scan(&id)
	if err != nil {
		return "", r.store.Err("tutor", err)
	}
	return id, nil
}

func (r *TutorRepository) Update(ctx context.Context, t *domain.Tutor) error {
	var touched string
	err := r.store.QueryRow(ctx, procTutorsUpdate,
		t.ID, t.FirstName, t.LastName, t.IdentityDocument, t.Phone, nullString(t.Email)).Scan(&touched)
	return r.store.Err("tutor", err)
}

func (r *TutorRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procTutorsDelete, id).Scan(&touched)
	return r.store.Err("tutor", err)
}
