// Package mysql implements the repositories on top of a store that exposes
// its schema exclusively through stored procedures. Every procedure either
// returns rows or raises a numbered error:
//
//   - single-row procedures return the row, or no row at all (not found);
//   - mutating procedures return the id of the touched row as a single
//     column, so a vanished row surfaces as sql.ErrNoRows;
//   - business rule violations are raised with error numbers in
//     [45000, 45999] and their message travels to the client unchanged.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/pnvi/immunization-api/internal/api/metrics"
	"github.com/pnvi/immunization-api/internal/core/domain"
)

// Numbered errors below constraintMin or above constraintMax are driver or
// server faults, not business rules.
const (
	constraintMin = 45000
	constraintMax = 45999
)

// Store wraps the pool with the procedure calling convention shared by all
// repositories.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Query runs a procedure that returns zero or more rows.
func (s *Store) Query(ctx context.Context, proc string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, callStmt(proc, len(args)), args...)
	metrics.ProcedureDuration.WithLabelValues(proc).Observe(time.Since(start).Seconds())
	return rows, err
}

// QueryRow runs a procedure expected to return exactly one row. The error,
// including sql.ErrNoRows, is deferred to Scan.
func (s *Store) QueryRow(ctx context.Context, proc string, args ...any) *sql.Row {
	start := time.Now()
	row := s.db.QueryRowContext(ctx, callStmt(proc, len(args)), args...)
	metrics.ProcedureDuration.WithLabelValues(proc).Observe(time.Since(start).Seconds())
	return row
}

// Err maps driver errors onto domain error kinds. Resource names the family
// for not-found messages and metrics.
func (s *Store) Err(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound(resource)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number >= constraintMin && myErr.Number <= constraintMax {
		metrics.ConstraintViolationsTotal.WithLabelValues(resource).Inc()
		return domain.NewConstraint(myErr.Message, err)
	}
	return domain.NewInternal(resource+" store call failed", err)
}

// callStmt builds "CALL proc(?, ?, …)" with one placeholder per argument.
func callStmt(proc string, argc int) string {
	if argc == 0 {
		return "CALL " + proc + "()"
	}
	return "CALL " + proc + "(?" + strings.Repeat(", ?", argc-1) + ")"
}

// nullString maps an empty string to SQL NULL for optional procedure
// arguments.
func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
