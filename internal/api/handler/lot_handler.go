package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// LotHandler handles vaccine lots.
type LotHandler struct {
	service ports.LotService
}

func NewLotHandler(service ports.LotService) *LotHandler {
	return &LotHandler{service: service}
}

type lotRequest struct {
	VaccineID  string `json:"vaccine_id"  validate:"required,uuid"`
	LotNumber  string `json:"lot_number"  validate:"required"`
	Quantity   int    `json:"quantity"    validate:"required,gt=0"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// ListByVaccine returns the lots of one vaccine.
//
// @Summary      List lots of a vaccine
// @Tags         lots
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Vaccine id"
// @Success      200  {array}  domain.Lot
// @Failure      404  {object}  map[string]string
// @Router       /vaccines/{id}/lots [get]
func (h *LotHandler) ListByVaccine(c echo.Context) error {
	vaccineID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	lots, err := h.service.ListByVaccine(c.Request().Context(), vaccineID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lots)
}

// Get returns one lot by id.
//
// @Summary      Get a lot
// @Tags         lots
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lot id"
// @Success      200  {object}  domain.Lot
// @Failure      404  {object}  map[string]string
// @Router       /lots/{id} [get]
func (h *LotHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	lot, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lot)
}

// Create registers a lot for a vaccine.
//
// @Summary      Create a lot
// @Tags         lots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      lotRequest  true  "Lot details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /lots [post]
func (h *LotHandler) Create(c echo.Context) error {
	var req lotRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	expiry, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.LotInput{
		VaccineID:  req.VaccineID,
		LotNumber:  req.LotNumber,
		Quantity:   req.Quantity,
		ExpiryDate: expiry,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "lot created", ID: id})
}

// Update replaces a lot's fields.
//
// @Summary      Update a lot
// @Tags         lots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Lot id"
// @Param        body  body      lotRequest  true  "Lot details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /lots/{id} [put]
func (h *LotHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req lotRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	expiry, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.LotInput{
		VaccineID:  req.VaccineID,
		LotNumber:  req.LotNumber,
		Quantity:   req.Quantity,
		ExpiryDate: expiry,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "lot updated"})
}

// Delete removes a lot.
//
// @Summary      Delete a lot
// @Tags         lots
// @Security     BearerAuth
// @Param        id  path  string  true  "Lot id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /lots/{id} [delete]
func (h *LotHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
