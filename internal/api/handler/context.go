package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/api/middleware"
	"github.com/pnvi/immunization-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

// currentPrincipal extracts the identity injected by the Auth middleware.
// Its absence on a protected route means the route was wired without
// authentication, which is a programming error, not a client fault.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, domain.NewInternal("handler reached without an authenticated principal", nil)
	}
	return p, nil
}

// pathID reads a path parameter and checks it parses as a UUID before any
// service call.
func pathID(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", domain.NewValidation([]domain.FieldError{
			{Field: name, Message: "must be a valid UUID"},
		})
	}
	return raw, nil
}

// parseDate parses a required yyyy-mm-dd value. Format errors on bound
// request fields are caught by validator tags; this covers query and path
// values that arrive as plain strings.
func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidation([]domain.FieldError{
			{Field: field, Message: "must be a date in format " + dateLayout},
		})
	}
	return t, nil
}
