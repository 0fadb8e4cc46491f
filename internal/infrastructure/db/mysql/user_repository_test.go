package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// setupStore creates a Store backed by a mock connection.
func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewStore(db), mock, func() { db.Close() }
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(sqlmock.Sqlmock)
		wantID     string
		wantKind   domain.Kind
		wantErrMsg string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("CALL sp_users_create").
					WithArgs("juanperez", "$2a$10$hash", domain.RoleDoctor).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("11111111-1111-1111-1111-111111111111"))
			},
			wantID: "11111111-1111-1111-1111-111111111111",
		},
		{
			name: "duplicate username raised by procedure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("CALL sp_users_create").
					WithArgs("juanperez", "$2a$10$hash", domain.RoleDoctor).
					WillReturnError(&mysql.MySQLError{Number: 45001, Message: "username already exists"})
			},
			wantKind:   domain.KindConstraint,
			wantErrMsg: "username already exists",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, cleanup := setupStore(t)
			defer cleanup()
			tt.setupMock(mock)

			repo := NewUserRepository(store)
			id, err := repo.Create(context.Background(), &domain.User{
				Username:     "juanperez",
				PasswordHash: "$2a$10$hash",
				Role:         domain.RoleDoctor,
			})

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantErrMsg, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_users_get").
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "role", "status", "created_at"}).
				AddRow("u-1", "juanperez", "doctor", "Activo", createdAt))

		repo := NewUserRepository(store)
		u, err := repo.FindByID(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Equal(t, "juanperez", u.Username)
		assert.Equal(t, domain.RoleDoctor, u.Role)
		assert.Equal(t, domain.StatusActive, u.Status)
		assert.Empty(t, u.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_users_get").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "role", "status", "created_at"}))

		repo := NewUserRepository(store)
		_, err := repo.FindByID(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.Equal(t, "user not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_List(t *testing.T) {
	store, mock, cleanup := setupStore(t)
	defer cleanup()

	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("CALL sp_users_list").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "role", "status", "created_at"}).
			AddRow("u-1", "admin", "administrador", "Activo", createdAt).
			AddRow("u-2", "juanperez", "doctor", "Inactivo", createdAt))

	repo := NewUserRepository(store)
	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, domain.RoleAdministrator, users[0].Role)
	assert.Equal(t, domain.StatusInactive, users[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_users_set_status").
			WithArgs("u-1", domain.StatusInactive).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u-1"))

		repo := NewUserRepository(store)
		err := repo.SetStatus(context.Background(), "u-1", domain.StatusInactive)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_users_set_status").
			WithArgs("missing", domain.StatusInactive).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		repo := NewUserRepository(store)
		err := repo.SetStatus(context.Background(), "missing", domain.StatusInactive)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
