package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

const (
	procAppointmentsCreate    = "sp_appointments_create"
	procAppointmentsGet       = "sp_appointments_get"
	procAppointmentsByChild   = "sp_appointments_list_by_child"
	procAppointmentsAgenda    = "sp_appointments_agenda_by_center"
	procAppointmentsSetStatus = "sp_appointments_set_status"
)

// AppointmentRepository persists appointments. The create procedure raises
// on slot conflicts for the same center and time.
type AppointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

func scanAppointment(scan func(...any) error) (domain.Appointment, error) {
	var a domain.Appointment
	var vaccine, notes sql.NullString
	err := scan(&a.ID, &a.ChildID, &a.CenterID, &vaccine,
		&a.ScheduledAt, &a.Status, &notes, &a.CreatedAt)
	if err != nil {
		return domain.Appointment{}, err
	}
	a.VaccineID = vaccine.String
	a.Notes = notes.String
	return a, nil
}

func (r *AppointmentRepository) collect(rows *sql.Rows) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (string, error) {
	var id string
	err := r.store.QueryRow(ctx, procAppointmentsCreate,
		a.ChildID, a.CenterID, nullString(a.VaccineID), a.ScheduledAt, nullString(a.Notes)).Scan(&id)
	if err != nil {
		return "", r.store.Err("appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	a, err := scanAppointment(r.store.QueryRow(ctx, procAppointmentsGet, id).Scan)
	if err != nil {
		return nil, r.store.Err("appointment", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) ListByChild(ctx context.Context, childID string) ([]domain.Appointment, error) {
	rows, err := r.store.Query(ctx, procAppointmentsByChild, childID)
	if err != nil {
		return nil, r.store.Err("appointment", err)
	}
	defer rows.Close()

	out, err := r.collect(rows)
	if err != nil {
		return nil, r.store.Err("appointment", err)
	}
	return out, nil
}

func (r *AppointmentRepository) AgendaByCenter(ctx context.Context, centerID string, date time.Time) ([]domain.Appointment, error) {
	rows, err := r.store.Query(ctx, procAppointmentsAgenda, centerID, date.Format("2006-01-02"))
	if err != nil {
		return nil, r.store.Err("appointment", err)
	}
	defer rows.Close()

	out, err := r.collect(rows)
	if err != nil {
		return nil, r.store.Err("appointment", err)
	}
	return out, nil
}

func (r *AppointmentRepository) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	var touched string
	err := r.store.QueryRow(ctx, procAppointmentsSetStatus, id, status).Scan(&touched)
	return r.store.Err("appointment", err)
}
