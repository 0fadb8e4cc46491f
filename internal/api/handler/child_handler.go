package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

// ChildHandler handles children enrolled in the program.
type ChildHandler struct {
	service ports.ChildService
}

func NewChildHandler(service ports.ChildService) *ChildHandler {
	return &ChildHandler{service: service}
}

type childRequest struct {
	FirstName        string `json:"first_name"        validate:"required"`
	LastName         string `json:"last_name"         validate:"required"`
	IdentityDocument string `json:"identity_document" validate:"required"`
	BirthDate        string `json:"birth_date"        validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender"            validate:"required,oneof=M F"`
	CountryID        string `json:"country_id"        validate:"required,uuid"`
}

type linkTutorRequest struct {
	TutorID      string `json:"tutor_id"     validate:"required,uuid"`
	Relationship string `json:"relationship" validate:"required"`
}

func (r childRequest) toInput() (ports.ChildInput, error) {
	birthDate, err := parseDate("birth_date", r.BirthDate)
	if err != nil {
		return ports.ChildInput{}, err
	}
	return ports.ChildInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		IdentityDocument: r.IdentityDocument,
		BirthDate:        birthDate,
		Gender:           domain.Gender(r.Gender),
		CountryID:        r.CountryID,
	}, nil
}

// List returns every enrolled child.
//
// @Summary      List children
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Child
// @Router       /children [get]
func (h *ChildHandler) List(c echo.Context) error {
	children, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, children)
}

// ListByTutor returns the children of one tutor.
//
// @Summary      List a tutor's children
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Tutor id"
// @Success      200  {array}  domain.Child
// @Failure      404  {object}  map[string]string
// @Router       /tutors/{id}/children [get]
func (h *ChildHandler) ListByTutor(c echo.Context) error {
	tutorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	children, err := h.service.ListByTutor(c.Request().Context(), tutorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, children)
}

// Get returns one child by id.
//
// @Summary      Get a child
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Child id"
// @Success      200  {object}  domain.Child
// @Failure      404  {object}  map[string]string
// @Router       /children/{id} [get]
func (h *ChildHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	child, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, child)
}

// Create enrolls a child in the program.
//
// @Summary      Create a child
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      childRequest  true  "Child details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /children [post]
func (h *ChildHandler) Create(c echo.Context) error {
	var req childRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "child created", ID: id})
}

// Update replaces a child's fields.
//
// @Summary      Update a child
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Child id"
// @Param        body  body      childRequest  true  "Child details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /children/{id} [put]
func (h *ChildHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req childRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "child updated"})
}

// Delete removes a child from the program.
//
// @Summary      Delete a child
// @Tags         children
// @Security     BearerAuth
// @Param        id  path  string  true  "Child id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /children/{id} [delete]
func (h *ChildHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// LinkTutor associates a tutor with a child.
//
// @Summary      Link a tutor to a child
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Child id"
// @Param        body  body      linkTutorRequest  true  "Tutor link"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /children/{id}/tutors [post]
func (h *ChildHandler) LinkTutor(c echo.Context) error {
	childID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req linkTutorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.LinkTutor(c.Request().Context(), childID, ports.LinkTutorInput{
		TutorID:      req.TutorID,
		Relationship: req.Relationship,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "tutor linked"})
}
