package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Data is
// only populated for validation failures, where it carries the field list.
type errorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to HTTP status codes. This is the only place
//     where the error taxonomy meets transport codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "data"?: …}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var appErr *domain.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case domain.KindValidation:
			return http.StatusBadRequest, errorResponse{Error: appErr.Message, Data: appErr.Data}
		case domain.KindConstraint:
			return http.StatusBadRequest, errorResponse{Error: appErr.Message}
		case domain.KindInvalidCredentials,
			domain.KindTokenMissing,
			domain.KindTokenInvalid,
			domain.KindTokenExpired:
			return http.StatusUnauthorized, errorResponse{Error: appErr.Message}
		case domain.KindAccountInactive, domain.KindForbidden:
			return http.StatusForbidden, errorResponse{Error: appErr.Message}
		case domain.KindNotFound:
			return http.StatusNotFound, errorResponse{Error: appErr.Message}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
