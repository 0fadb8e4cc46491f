package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

// ReportHandler handles aggregate reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Coverage returns doses applied per center and vaccine over a period.
//
// @Summary      Vaccination coverage report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        center_id  query  string  false  "Restrict to one center"
// @Param        from       query  string  true   "Period start (yyyy-mm-dd)"
// @Param        to         query  string  true   "Period end (yyyy-mm-dd)"
// @Success      200  {array}   domain.CoverageRow
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /reports/coverage [get]
func (h *ReportHandler) Coverage(c echo.Context) error {
	centerID := c.QueryParam("center_id")
	if centerID != "" {
		if _, err := uuid.Parse(centerID); err != nil {
			return domain.NewValidation([]domain.FieldError{
				{Field: "center_id", Message: "must be a valid UUID"},
			})
		}
	}

	from, err := parseDate("from", c.QueryParam("from"))
	if err != nil {
		return err
	}
	to, err := parseDate("to", c.QueryParam("to"))
	if err != nil {
		return err
	}

	rows, err := h.service.Coverage(c.Request().Context(), ports.CoverageFilter{
		CenterID: centerID,
		From:     from,
		To:       to,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
