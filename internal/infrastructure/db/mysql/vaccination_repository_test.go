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

func TestVaccinationRepository_Create(t *testing.T) {
	appliedAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	event := &domain.Vaccination{
		ChildID:   "c-1",
		LotID:     "l-1",
		SchemeID:  "s-1",
		CenterID:  "hc-1",
		AppliedBy: "u-9",
		AppliedAt: appliedAt,
	}

	tests := []struct {
		name       string
		setupMock  func(sqlmock.Sqlmock)
		wantKind   domain.Kind
		wantErrMsg string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("CALL sp_vaccinations_create").
					WithArgs("c-1", "l-1", "s-1", "hc-1", "u-9", appliedAt).
					WillReturnRows(sqlmock.NewRows([]string{"vaccination_id"}).AddRow("v-1"))
			},
		},
		{
			name: "expired lot raised by procedure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("CALL sp_vaccinations_create").
					WithArgs("c-1", "l-1", "s-1", "hc-1", "u-9", appliedAt).
					WillReturnError(&mysql.MySQLError{Number: 45020, Message: "lot is expired"})
			},
			wantKind:   domain.KindConstraint,
			wantErrMsg: "lot is expired",
		},
		{
			name: "duplicate dose raised by procedure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("CALL sp_vaccinations_create").
					WithArgs("c-1", "l-1", "s-1", "hc-1", "u-9", appliedAt).
					WillReturnError(&mysql.MySQLError{Number: 45021, Message: "dose already applied for this scheme entry"})
			},
			wantKind:   domain.KindConstraint,
			wantErrMsg: "dose already applied for this scheme entry",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, cleanup := setupStore(t)
			defer cleanup()
			tt.setupMock(mock)

			repo := NewVaccinationRepository(store)
			id, err := repo.Create(context.Background(), event)

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantErrMsg, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "v-1", id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVaccinationRepository_CreateWithoutScheme(t *testing.T) {
	store, mock, cleanup := setupStore(t)
	defer cleanup()

	appliedAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	// An empty scheme id travels as NULL.
	mock.ExpectQuery("CALL sp_vaccinations_create").
		WithArgs("c-1", "l-1", nil, "hc-1", "u-9", appliedAt).
		WillReturnRows(sqlmock.NewRows([]string{"vaccination_id"}).AddRow("v-2"))

	repo := NewVaccinationRepository(store)
	id, err := repo.Create(context.Background(), &domain.Vaccination{
		ChildID:   "c-1",
		LotID:     "l-1",
		CenterID:  "hc-1",
		AppliedBy: "u-9",
		AppliedAt: appliedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "v-2", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccinationRepository_HistoryByChild(t *testing.T) {
	store, mock, cleanup := setupStore(t)
	defer cleanup()

	appliedAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("CALL sp_vaccinations_history_by_child").
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"vaccination_id", "vaccine_name", "dose_number", "lot_number", "center_name", "applied_at", "applied_by"}).
			AddRow("v-1", "BCG", 1, "L-2025-01", "Centro Norte", appliedAt, "juanperez").
			AddRow("v-2", "Pentavalente", 2, "L-2025-07", "Centro Norte", appliedAt, "juanperez"))

	repo := NewVaccinationRepository(store)
	history, err := repo.HistoryByChild(context.Background(), "c-1")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "BCG", history[0].VaccineName)
	assert.Equal(t, 2, history[1].DoseNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccinationRepository_Void(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_vaccinations_void").
			WithArgs("v-1").
			WillReturnRows(sqlmock.NewRows([]string{"vaccination_id"}).AddRow("v-1"))

		repo := NewVaccinationRepository(store)
		require.NoError(t, repo.Void(context.Background(), "v-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock, cleanup := setupStore(t)
		defer cleanup()

		mock.ExpectQuery("CALL sp_vaccinations_void").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"vaccination_id"}))

		repo := NewVaccinationRepository(store)
		err := repo.Void(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
