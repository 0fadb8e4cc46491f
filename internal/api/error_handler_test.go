package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_KindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", domain.NewValidation([]domain.FieldError{{Field: "name", Message: "is required"}}), http.StatusBadRequest, "validation failed"},
		{"constraint", domain.NewConstraint("expired lot", nil), http.StatusBadRequest, "expired lot"},
		{"invalid credentials", domain.NewInvalidCredentials(), http.StatusUnauthorized, "Invalid credentials"},
		{"token missing", domain.NewTokenMissing(), http.StatusUnauthorized, "missing authorization header"},
		{"token invalid", domain.NewTokenInvalid(nil), http.StatusUnauthorized, "invalid token"},
		{"token expired", domain.NewTokenExpired(), http.StatusUnauthorized, "token expired"},
		{"account inactive", domain.NewAccountInactive(), http.StatusForbidden, "User account is inactive"},
		{"forbidden", domain.NewForbidden(), http.StatusForbidden, "insufficient permissions"},
		{"not found", domain.NewNotFound("child"), http.StatusNotFound, "child not found"},
		{"internal detail suppressed", domain.NewInternal("store call failed", errors.New("dial tcp: refused")), http.StatusInternalServerError, "internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := render(t, tt.err)
			if status != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, status)
			}
			if body["error"] != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, body["error"])
			}
		})
	}
}

func TestErrorHandler_ValidationCarriesFields(t *testing.T) {
	_, body := render(t, domain.NewValidation([]domain.FieldError{
		{Field: "birth_date", Message: "must be a date in format 2006-01-02"},
	}))

	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one field entry, got %+v", body["data"])
	}
	entry := data[0].(map[string]any)
	if entry["field"] != "birth_date" {
		t.Fatalf("unexpected field entry: %+v", entry)
	}
}

func TestErrorHandler_NonValidationHasNoData(t *testing.T) {
	_, body := render(t, domain.NewNotFound("tutor"))
	if _, present := body["data"]; present {
		t.Fatalf("data must be omitted outside validation errors: %+v", body)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	status, body := render(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	if status != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", status)
	}
	if body["error"] != "Method Not Allowed" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
