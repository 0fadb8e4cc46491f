package mysql

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const procUsersAuthenticate = "sp_users_authenticate"

// AuthRepository looks up accounts for credential checks.
type AuthRepository struct {
	store *Store
}

func NewAuthRepository(store *Store) *AuthRepository {
	return &AuthRepository{store: store}
}

// FindByUsername returns the full user row, password hash included.
func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.store.QueryRow(ctx, procUsersAuthenticate, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, r.store.Err("user", err)
	}
	return &u, nil
}
