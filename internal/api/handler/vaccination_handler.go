package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// VaccinationHandler handles applied doses.
type VaccinationHandler struct {
	service ports.VaccinationService
}

func NewVaccinationHandler(service ports.VaccinationService) *VaccinationHandler {
	return &VaccinationHandler{service: service}
}

// recordVaccinationRequest has no applied_by field: the administering user
// is always the authenticated principal, never client-supplied.
type recordVaccinationRequest struct {
	ChildID   string    `json:"child_id"   validate:"required,uuid"`
	LotID     string    `json:"lot_id"     validate:"required,uuid"`
	SchemeID  string    `json:"scheme_id"  validate:"omitempty,uuid"`
	CenterID  string    `json:"center_id"  validate:"required,uuid"`
	AppliedAt time.Time `json:"applied_at"`
}

// Record registers an applied dose. Stock, expiry and duplicate dose rules
// are enforced by the store and surface as 400s.
//
// @Summary      Record an applied dose
// @Tags         vaccinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordVaccinationRequest  true  "Dose details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /vaccinations [post]
func (h *VaccinationHandler) Record(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req recordVaccinationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Record(c.Request().Context(), ports.RecordVaccinationInput{
		ChildID:   req.ChildID,
		LotID:     req.LotID,
		SchemeID:  req.SchemeID,
		CenterID:  req.CenterID,
		AppliedAt: req.AppliedAt,
		AppliedBy: principal.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "vaccination recorded", ID: id})
}

// Get returns one applied dose by id.
//
// @Summary      Get an applied dose
// @Tags         vaccinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vaccination id"
// @Success      200  {object}  domain.Vaccination
// @Failure      404  {object}  map[string]string
// @Router       /vaccinations/{id} [get]
func (h *VaccinationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vaccination, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vaccination)
}

// HistoryByChild returns a child's vaccination card.
//
// @Summary      Get a child's vaccination history
// @Tags         vaccinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Child id"
// @Success      200  {array}  domain.HistoryEntry
// @Failure      404  {object}  map[string]string
// @Router       /children/{id}/vaccinations [get]
func (h *VaccinationHandler) HistoryByChild(c echo.Context) error {
	childID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	history, err := h.service.HistoryByChild(c.Request().Context(), childID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// Void marks a recorded dose as void. The row is kept for auditing; reports
// exclude voided doses.
//
// @Summary      Void an applied dose
// @Tags         vaccinations
// @Security     BearerAuth
// @Param        id  path  string  true  "Vaccination id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /vaccinations/{id} [delete]
func (h *VaccinationHandler) Void(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Void(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
