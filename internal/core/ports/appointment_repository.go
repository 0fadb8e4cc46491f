package ports

import (
	"context"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// Create books an appointment and returns the generated id. The store
	// rejects slot conflicts for the same center and time.
	Create(ctx context.Context, a *domain.Appointment) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByChild(ctx context.Context, childID string) ([]domain.Appointment, error)
	// AgendaByCenter returns all appointments of a center on a given day.
	AgendaByCenter(ctx context.Context, centerID string, date time.Time) ([]domain.Appointment, error)
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}
