package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/ports"
)

// TutorHandler handles tutors and guardians.
type TutorHandler struct {
	service ports.TutorService
}

func NewTutorHandler(service ports.TutorService) *TutorHandler {
	return &TutorHandler{service: service}
}

type tutorRequest struct {
	FirstName        string `json:"first_name"        validate:"required"`
	LastName         string `json:"last_name"         validate:"required"`
	IdentityDocument string `json:"identity_document" validate:"required"`
	Phone            string `json:"phone"             validate:"required"`
	Email            string `json:"email"             validate:"omitempty,email"`
}

// List returns every tutor.
//
// @Summary      List tutors
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Tutor
// @Router       /tutors [get]
func (h *TutorHandler) List(c echo.Context) error {
	tutors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutors)
}

// Get returns one tutor by id.
//
// @Summary      Get a tutor
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tutor id"
// @Success      200  {object}  domain.Tutor
// @Failure      404  {object}  map[string]string
// @Router       /tutors/{id} [get]
func (h *TutorHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tutor, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutor)
}

// Create registers a tutor. Duplicate identity documents are rejected by
// the store.
//
// @Summary      Create a tutor
// @Tags         tutors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tutorRequest  true  "Tutor details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /tutors [post]
func (h *TutorHandler) Create(c echo.Context) error {
	var req tutorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.TutorInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		IdentityDocument: req.IdentityDocument,
		Phone:            req.Phone,
		Email:            req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "tutor created", ID: id})
}

// Update replaces a tutor's fields.
//
// @Summary      Update a tutor
// @Tags         tutors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Tutor id"
// @Param        body  body      tutorRequest  true  "Tutor details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /tutors/{id} [put]
func (h *TutorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req tutorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.TutorInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		IdentityDocument: req.IdentityDocument,
		Phone:            req.Phone,
		Email:            req.Email,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "tutor updated"})
}

// Delete removes a tutor. Tutors still linked to children are rejected by
// the store.
//
// @Summary      Delete a tutor
// @Tags         tutors
// @Security     BearerAuth
// @Param        id  path  string  true  "Tutor id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tutors/{id} [delete]
func (h *TutorHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
