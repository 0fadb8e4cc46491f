package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	created      []*domain.Appointment
	statusSet    map[string]domain.AppointmentStatus
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{
		appointments: make(map[string]*domain.Appointment),
		statusSet:    make(map[string]domain.AppointmentStatus),
	}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (string, error) {
	r.created = append(r.created, a)
	return "a-1", nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.NewNotFound("appointment")
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) ListByChild(context.Context, string) ([]domain.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) AgendaByCenter(context.Context, string, time.Time) ([]domain.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) SetStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.statusSet[id] = status
	return nil
}

func TestAppointmentService_Book(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, testLogger())

	id, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		ChildID:     "c-1",
		CenterID:    "hc-1",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if id != "a-1" {
		t.Fatalf("unexpected id %q", id)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created appointment")
	}
	if repo.created[0].Status != domain.AppointmentScheduled {
		t.Fatalf("new appointments must start as %s, got %s", domain.AppointmentScheduled, repo.created[0].Status)
	}
}

func TestAppointmentService_Book_PastDate(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, testLogger())

	_, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		ChildID:     "c-1",
		CenterID:    "hc-1",
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields, ok := err.(*domain.Error).Data.([]domain.FieldError)
	if !ok || len(fields) != 1 || fields[0].Field != "scheduled_at" {
		t.Fatalf("expected a scheduled_at field error, got %+v", err.(*domain.Error).Data)
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing must be persisted")
	}
}

func TestAppointmentService_SetStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      domain.AppointmentStatus
		allowed bool
	}{
		{"scheduled to attended", domain.AppointmentScheduled, domain.AppointmentAttended, true},
		{"scheduled to cancelled", domain.AppointmentScheduled, domain.AppointmentCancelled, true},
		{"attended is terminal", domain.AppointmentAttended, domain.AppointmentCancelled, false},
		{"cancelled is terminal", domain.AppointmentCancelled, domain.AppointmentAttended, false},
		{"no self transition", domain.AppointmentScheduled, domain.AppointmentScheduled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubAppointmentRepo()
			repo.appointments["a-1"] = &domain.Appointment{ID: "a-1", Status: tt.from}
			svc := NewAppointmentService(repo, testLogger())

			err := svc.SetStatus(context.Background(), "a-1", tt.to)
			if tt.allowed {
				if err != nil {
					t.Fatalf("expected transition to succeed: %v", err)
				}
				if repo.statusSet["a-1"] != tt.to {
					t.Fatalf("status not persisted")
				}
				return
			}
			if !domain.IsKind(err, domain.KindConstraint) {
				t.Fatalf("expected constraint error, got %v", err)
			}
			if !strings.Contains(err.Error(), string(tt.from)) || !strings.Contains(err.Error(), string(tt.to)) {
				t.Fatalf("message must name both statuses, got %q", err.Error())
			}
		})
	}
}

func TestAppointmentService_SetStatus_NotFound(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), testLogger())

	err := svc.SetStatus(context.Background(), "missing", domain.AppointmentAttended)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAppointmentService_Cancel(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.appointments["a-1"] = &domain.Appointment{ID: "a-1", Status: domain.AppointmentScheduled}
	svc := NewAppointmentService(repo, testLogger())

	if err := svc.Cancel(context.Background(), "a-1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if repo.statusSet["a-1"] != domain.AppointmentCancelled {
		t.Fatalf("expected cancelled status, got %s", repo.statusSet["a-1"])
	}
}
