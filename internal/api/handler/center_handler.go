package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// CenterHandler handles health centers.
type CenterHandler struct {
	service ports.CenterService
}

func NewCenterHandler(service ports.CenterService) *CenterHandler {
	return &CenterHandler{service: service}
}

type centerRequest struct {
	Name      string `json:"name"       validate:"required"`
	Address   string `json:"address"    validate:"required"`
	Phone     string `json:"phone"      validate:"required"`
	CountryID string `json:"country_id" validate:"required,uuid"`
	Status    string `json:"status"     validate:"required,oneof=Activo Inactivo"`
}

// List returns health centers, optionally filtered by country.
//
// @Summary      List health centers
// @Tags         centers
// @Produce      json
// @Security     BearerAuth
// @Param        country_id  query  string  false  "Filter by country id"
// @Success      200  {array}  domain.HealthCenter
// @Router       /centers [get]
func (h *CenterHandler) List(c echo.Context) error {
	countryID := c.QueryParam("country_id")
	centers, err := h.service.List(c.Request().Context(), countryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, centers)
}

// Get returns one health center by id.
//
// @Summary      Get a health center
// @Tags         centers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Center id"
// @Success      200  {object}  domain.HealthCenter
// @Failure      404  {object}  map[string]string
// @Router       /centers/{id} [get]
func (h *CenterHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	center, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, center)
}

// Create registers a health center.
//
// @Summary      Create a health center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      centerRequest  true  "Center details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /centers [post]
func (h *CenterHandler) Create(c echo.Context) error {
	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CenterInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		CountryID: req.CountryID,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "center created", ID: id})
}

// Update replaces a health center's fields.
//
// @Summary      Update a health center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Center id"
// @Param        body  body      centerRequest  true  "Center details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /centers/{id} [put]
func (h *CenterHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.CenterInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		CountryID: req.CountryID,
		Status:    req.Status,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "center updated"})
}

// Delete removes a health center.
//
// @Summary      Delete a health center
// @Tags         centers
// @Security     BearerAuth
// @Param        id  path  string  true  "Center id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /centers/{id} [delete]
func (h *CenterHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
