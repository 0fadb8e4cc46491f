package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// BookAppointmentInput carries the data to schedule a visit. VaccineID is
// optional.
type BookAppointmentInput struct {
	ChildID     string
	CenterID    string
	VaccineID   string
	ScheduledAt time.Time
	Notes       string
}

// AppointmentService defines use cases for appointments.
type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	ListByChild(ctx context.Context, childID string) ([]domain.Appointment, error)
	CenterAgenda(ctx context.Context, centerID string, date time.Time) ([]domain.Appointment, error)
	// SetStatus applies the requested transition after checking the
	// appointment state machine.
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	// Cancel is SetStatus(Cancelada) exposed as its own use case.
	Cancel(ctx context.Context, id string) error
}
