package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// VaccineHandler handles the vaccine catalog.
type VaccineHandler struct {
	service ports.VaccineService
}

func NewVaccineHandler(service ports.VaccineService) *VaccineHandler {
	return &VaccineHandler{service: service}
}

type vaccineRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Doses       int    `json:"doses"       validate:"required,gt=0"`
}

// List returns the full vaccine catalog.
//
// @Summary      List vaccines
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Vaccine
// @Router       /vaccines [get]
func (h *VaccineHandler) List(c echo.Context) error {
	vaccines, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vaccines)
}

// Get returns one vaccine by id.
//
// @Summary      Get a vaccine
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vaccine id"
// @Success      200  {object}  domain.Vaccine
// @Failure      404  {object}  map[string]string
// @Router       /vaccines/{id} [get]
func (h *VaccineHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vaccine, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vaccine)
}

// Create adds a vaccine to the catalog.
//
// @Summary      Create a vaccine
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vaccineRequest  true  "Vaccine details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /vaccines [post]
func (h *VaccineHandler) Create(c echo.Context) error {
	var req vaccineRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.VaccineInput{
		Name:        req.Name,
		Description: req.Description,
		Doses:       req.Doses,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "vaccine created", ID: id})
}

// Update replaces a vaccine's fields.
//
// @Summary      Update a vaccine
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Vaccine id"
// @Param        body  body      vaccineRequest  true  "Vaccine details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /vaccines/{id} [put]
func (h *VaccineHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req vaccineRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.VaccineInput{
		Name:        req.Name,
		Description: req.Description,
		Doses:       req.Doses,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "vaccine updated"})
}

// Delete removes a vaccine from the catalog.
//
// @Summary      Delete a vaccine
// @Tags         vaccines
// @Security     BearerAuth
// @Param        id  path  string  true  "Vaccine id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /vaccines/{id} [delete]
func (h *VaccineHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
