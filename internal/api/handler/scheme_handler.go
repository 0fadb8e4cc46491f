package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// SchemeHandler handles vaccination calendar entries.
type SchemeHandler struct {
	service ports.SchemeService
}

func NewSchemeHandler(service ports.SchemeService) *SchemeHandler {
	return &SchemeHandler{service: service}
}

type schemeRequest struct {
	CountryID  string `json:"country_id"  validate:"required,uuid"`
	VaccineID  string `json:"vaccine_id"  validate:"required,uuid"`
	DoseNumber int    `json:"dose_number" validate:"required,gte=1"`
	AgeMonths  int    `json:"age_months"  validate:"gte=0"`
}

// List returns calendar entries, optionally filtered by country.
//
// @Summary      List calendar entries
// @Tags         schemes
// @Produce      json
// @Security     BearerAuth
// @Param        country_id  query  string  false  "Filter by country id"
// @Success      200  {array}  domain.SchemeEntry
// @Router       /schemes [get]
func (h *SchemeHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context(), c.QueryParam("country_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Get returns one calendar entry by id.
//
// @Summary      Get a calendar entry
// @Tags         schemes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Scheme entry id"
// @Success      200  {object}  domain.SchemeEntry
// @Failure      404  {object}  map[string]string
// @Router       /schemes/{id} [get]
func (h *SchemeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Create adds an entry to a country's vaccination calendar.
//
// @Summary      Create a calendar entry
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      schemeRequest  true  "Entry details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /schemes [post]
func (h *SchemeHandler) Create(c echo.Context) error {
	var req schemeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.SchemeInput{
		CountryID:  req.CountryID,
		VaccineID:  req.VaccineID,
		DoseNumber: req.DoseNumber,
		AgeMonths:  req.AgeMonths,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "scheme entry created", ID: id})
}

// Update replaces a calendar entry's fields.
//
// @Summary      Update a calendar entry
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Scheme entry id"
// @Param        body  body      schemeRequest  true  "Entry details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /schemes/{id} [put]
func (h *SchemeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req schemeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.SchemeInput{
		CountryID:  req.CountryID,
		VaccineID:  req.VaccineID,
		DoseNumber: req.DoseNumber,
		AgeMonths:  req.AgeMonths,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "scheme entry updated"})
}

// Delete removes a calendar entry.
//
// @Summary      Delete a calendar entry
// @Tags         schemes
// @Security     BearerAuth
// @Param        id  path  string  true  "Scheme entry id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /schemes/{id} [delete]
func (h *SchemeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
