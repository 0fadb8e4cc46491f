package mysql

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

func TestStoreErr_Nil(t *testing.T) {
	s := NewStore(nil)
	assert.NoError(t, s.Err("child", nil))
}

func TestStoreErr_NoRows(t *testing.T) {
	s := NewStore(nil)

	err := s.Err("child", sql.ErrNoRows)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Equal(t, "child not found", err.Error())
}

func TestStoreErr_ConstraintRange(t *testing.T) {
	s := NewStore(nil)

	tests := []struct {
		name   string
		number uint16
		kind   domain.Kind
	}{
		{"lower bound", 45000, domain.KindConstraint},
		{"inside range", 45022, domain.KindConstraint},
		{"upper bound", 45999, domain.KindConstraint},
		{"below range is internal", 44999, domain.KindInternal},
		{"driver duplicate key is internal", 1062, domain.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raised := &mysql.MySQLError{Number: tt.number, Message: "lot is expired"}
			err := s.Err("vaccination", raised)
			assert.True(t, domain.IsKind(err, tt.kind), "got %v", err)
			if tt.kind == domain.KindConstraint {
				assert.Equal(t, "lot is expired", err.Error())
			}
		})
	}
}

func TestStoreErr_PlainError(t *testing.T) {
	s := NewStore(nil)
	cause := errors.New("connection reset")

	err := s.Err("user", cause)
	assert.True(t, domain.IsKind(err, domain.KindInternal))
	assert.True(t, errors.Is(err, cause), "cause must stay wrapped")
}

func TestCallStmt(t *testing.T) {
	assert.Equal(t, "CALL sp_users_list()", callStmt("sp_users_list", 0))
	assert.Equal(t, "CALL sp_users_get(?)", callStmt("sp_users_get", 1))
	assert.Equal(t, "CALL sp_children_create(?, ?, ?, ?, ?, ?)", callStmt("sp_children_create", 6))
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.True(t, nullString("x").Valid)
	assert.Equal(t, "x", nullString("x").String)
}
