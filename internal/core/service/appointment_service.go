package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type appointmentService struct {
	repo ports.AppointmentRepository
	log  zerolog.Logger
}

// NewAppointmentService wires the appointment use cases.
func NewAppointmentService(repo ports.AppointmentRepository, log zerolog.Logger) ports.AppointmentService {
	return &appointmentService{repo: repo, log: log}
}

func (s *appointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (string, error) {
	if !in.ScheduledAt.After(time.Now()) {
		return "", domain.NewValidation([]domain.FieldError{
			{Field: "scheduled_at", Message: "must be in the future"},
		})
	}

	id, err := s.repo.Create(ctx, &domain.Appointment{
		ChildID:     in.ChildID,
		CenterID:    in.CenterID,
		VaccineID:   in.VaccineID,
		ScheduledAt: in.ScheduledAt,
		Status:      domain.AppointmentScheduled,
		Notes:       in.Notes,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("appointment_id", id).Str("child_id", in.ChildID).Str("center_id", in.CenterID).Msg("appointment booked")
	return id, nil
}

func (s *appointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *appointmentService) ListByChild(ctx context.Context, childID string) ([]domain.Appointment, error) {
	return s.repo.ListByChild(ctx, childID)
}

func (s *appointmentService) CenterAgenda(ctx context.Context, centerID string, date time.Time) ([]domain.Appointment, error) {
	return s.repo.AgendaByCenter(ctx, centerID, date)
}

func (s *appointmentService) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !appt.Status.CanTransitionTo(status) {
		return domain.NewConstraint(
			fmt.Sprintf("cannot change appointment from %s to %s", appt.Status, status), nil)
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info().Str("appointment_id", id).Str("status", string(status)).Msg("appointment status changed")
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, domain.AppointmentCancelled)
}
