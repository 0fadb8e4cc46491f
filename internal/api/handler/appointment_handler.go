package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

// AppointmentHandler handles scheduled vaccination visits.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookAppointmentRequest struct {
	ChildID     string    `json:"child_id"     validate:"required,uuid"`
	CenterID    string    `json:"center_id"    validate:"required,uuid"`
	VaccineID   string    `json:"vaccine_id"   validate:"omitempty,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes"`
}

type setAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Programada Atendida Cancelada"`
}

// Book schedules a visit. Slot conflicts are raised by the store.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		ChildID:     req.ChildID,
		CenterID:    req.CenterID,
		VaccineID:   req.VaccineID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "appointment booked", ID: id})
}

// Get returns one appointment by id.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	appt, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// ListByChild returns one child's appointments.
//
// @Summary      List a child's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Child id"
// @Success      200  {array}  domain.Appointment
// @Failure      404  {object}  map[string]string
// @Router       /children/{id}/appointments [get]
func (h *AppointmentHandler) ListByChild(c echo.Context) error {
	childID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	appts, err := h.service.ListByChild(c.Request().Context(), childID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// CenterAgenda returns one center's appointments for a day.
//
// @Summary      Get a center's agenda for a day
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "Center id"
// @Param        date  query  string  true  "Day (yyyy-mm-dd)"
// @Success      200  {array}  domain.Appointment
// @Failure      400  {object}  map[string]string
// @Router       /centers/{id}/appointments [get]
func (h *AppointmentHandler) CenterAgenda(c echo.Context) error {
	centerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	date, err := parseDate("date", c.QueryParam("date"))
	if err != nil {
		return err
	}

	appts, err := h.service.CenterAgenda(c.Request().Context(), centerID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// SetStatus applies a state transition. Invalid transitions (e.g. reopening
// a cancelled visit) are rejected with 400.
//
// @Summary      Change an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Appointment id"
// @Param        body  body      setAppointmentStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments/{id}/status [put]
func (h *AppointmentHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.SetStatus(c.Request().Context(), id, domain.AppointmentStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment status updated"})
}

// Cancel cancels a scheduled visit.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
