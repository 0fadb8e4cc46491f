package domain

import "time"

// AppointmentStatus tracks the lifecycle of a scheduled visit.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Programada"
	AppointmentAttended  AppointmentStatus = "Atendida"
	AppointmentCancelled AppointmentStatus = "Cancelada"
)

// validTransitions defines the allowed state machine transitions.
// Attended and cancelled are terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentScheduled: {AppointmentAttended, AppointmentCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled, AppointmentAttended, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled vaccination visit for a child at a health center.
// VaccineID is optional: a visit may be booked for a checkup without a
// specific vaccine in mind.
type Appointment struct {
	ID          string            `json:"appointment_id"`
	ChildID     string            `json:"child_id"`
	CenterID    string            `json:"center_id"`
	VaccineID   string            `json:"vaccine_id,omitempty"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
