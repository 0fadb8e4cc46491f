package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// CountryHandler handles the country catalog.
type CountryHandler struct {
	service ports.CountryService
}

func NewCountryHandler(service ports.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

type countryRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required,len=2"`
}

// List returns every country.
//
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Country
// @Router       /countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// Get returns one country by id.
//
// @Summary      Get a country
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Country id"
// @Success      200  {object}  domain.Country
// @Failure      404  {object}  map[string]string
// @Router       /countries/{id} [get]
func (h *CountryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	country, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// Create adds a country to the catalog.
//
// @Summary      Create a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      countryRequest  true  "Country details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /countries [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CountryInput{Name: req.Name, Code: req.Code})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "country created", ID: id})
}

// Update replaces a country's fields.
//
// @Summary      Update a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Country id"
// @Param        body  body      countryRequest  true  "Country details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /countries/{id} [put]
func (h *CountryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.CountryInput{Name: req.Name, Code: req.Code}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "country updated"})
}

// Delete removes a country. Referenced countries are rejected by the store.
//
// @Summary      Delete a country
// @Tags         countries
// @Security     BearerAuth
// @Param        id  path  string  true  "Country id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /countries/{id} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
