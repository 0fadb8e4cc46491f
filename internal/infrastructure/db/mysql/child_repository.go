package mysql

import (
	"context"
	"database/sql"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procChildrenList        = "sp_children_list"
	procChildrenListByTutor = "sp_children_list_by_tutor"
	procChildrenGet         = "sp_children_get"
	procChildrenCreate      = "sp_children_create"
	procChildrenUpdate      = "sp_children_update"
	procChildrenDelete      = "sp_children_delete"
	procChildrenLinkTutor   = "sp_children_link_tutor"
)

// ChildRepository persists children and their tutor links.
type ChildRepository struct {
	store *Store
}

func NewChildRepository(store *Store) *ChildRepository {
	return &ChildRepository{store: store}
}

func scanChild(scan func(...any) error) (domain.Child, error) {
	var c domain.Child
	err := scan(&c.ID, &c.FirstName, &c.LastName, &c.IdentityDocument,
		&c.BirthDate, &c.Gender, &c.CountryID, &c.CreatedAt)
	return c, err
}

func (r *ChildRepository) collect(rows *sql.Rows) ([]domain.Child, error) {
	var out []domain.Child
	for rows.Next() {
		c, err := scanChild(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ChildRepository) List(ctx context.Context) ([]domain.Child, error) {
	rows, err := r.store.Query(ctx, procChildrenList)
	if err != nil {
		return nil, r.store.Err("child", err)
	}
	defer rows.Close()

	out, err := r.collect(rows)
	if err != nil {
		return nil, r.store.Err("child", err)
	}
	return out, nil
}

func (r *ChildRepository) ListByTutor(ctx context.Context, tutorID string) ([]domain.Child, error) {
	rows, err := r.store.Query(ctx, procChildrenListByTutor, tutorID)
	if err != nil {
		return nil, r.store.Err("child", err)
	}
	defer rows.Close()

	out, err := r.collect(rows)
	if err != nil {
		return nil, r.store.Err("child", err)
	}
	return out, nil
}

func (r *ChildRepository) FindByID(ctx context.Context, id string) (*domain.Child, error) {
	c, err := scanChild(r.store.QueryRow(ctx, procChildrenGet, id).Scan)
	if err != nil {
		return nil, r.store.Err("child", err)
	}
	return &c, nil
}

func (r *ChildRepository) Create(ctx context.Context, c *domain.Child) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procChildrenCreate,
		c.FirstName, c.LastName, c.IdentityDocument, c.BirthDate, c.Gender, c.CountryID).Scan(&id)
	if err != nil {
		return "", r.store.Err("child", err)
	}
	return id, nil
}

func (r *ChildRepository) Update(ctx context.Context, c *domain.Child) error {
	var touched string
	err := r.store.QueryRow(ctx, procChildrenUpdate,
		c.ID, c.FirstName, c.LastName, c.IdentityDocument, c.BirthDate, c.Gender, c.CountryID).Scan(&touched)
	return r.store.Err("child", err)
}

func (r *ChildRepository) Delete(ctx context.Context, id string) error {
	var touched string
	err := r.store.QueryRow(ctx, procChildrenDelete, id).Scan(&touched)
	return r.store.Err("child", err)
}

func (r *ChildRepository) LinkTutor(ctx context.Context, link *domain.ChildTutor) error {
	var touched string
	err := r.store.QueryRow(ctx, procChildrenLinkTutor,
		link.ChildID, link.TutorID, link.Relationship).Scan(&touched)
	return r.store.Err("child", err)
}
