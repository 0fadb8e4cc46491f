package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procUsersCreate      = "sp_users_create"
	procUsersList        = "sp_users_list"
	procUsersGet         = "sp_users_get"
	procUsersSetStatus   = "sp_users_set_status"
	procUsersSetPassword = "sp_users_set_password"
)

// UserRepository persists application users. The list and get procedures
// never return the password hash.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procUsersCreate, u.Username, u.PasswordHash, u.Role).Scan(&id)
	if err != nil {
		return "", r.store.Err("user", err)
	}
	return id, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.store.Query(ctx, procUsersList)
	if err != nil {
		return nil, r.store.Err("user", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, r.store.Err("user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, r.store.Err("user", err)
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.store.QueryRow(ctx, procUsersGet, id).Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		return nil, r.store.Err("user", err)
	}
	return &u, nil
}

func (r *UserRepository) SetStatus(ctx context.Context, id string, status domain.UserStatus) error {
	var touched string
	err := r.store.QueryRow(ctx, procUsersSetStatus, id, status).Scan(&touched)
	return r.store.Err("user", err)
}

func (r *UserRepository) SetPassword(ctx context.Context, id string, passwordHash string) error {
	var touched string
	err := r.store.QueryRow(ctx, procUsersSetPassword, id, passwordHash).Scan(&touched)
	return r.store.Err("user", err)
}
