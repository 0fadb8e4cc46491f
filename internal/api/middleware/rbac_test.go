package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

func roleContext(t *testing.T, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(PrincipalKey, &domain.Principal{UserID: "u-1", Username: "juanperez", Role: role})
	return c, rec
}

func TestRequireRoles_Allows(t *testing.T) {
	c, rec := roleContext(t, domain.RoleDirector)

	called := false
	mw := RequireRoles(domain.RoleAdministrator, domain.RoleDirector)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_ForbidsRoleOutsideAllowList(t *testing.T) {
	c, _ := roleContext(t, domain.RoleDoctor)

	mw := RequireRoles(domain.RoleAdministrator, domain.RoleDirector)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestRequireRoles_MissingPrincipalIsInternal(t *testing.T) {
	// Auth did not run: the route is misconfigured, never silently allowed.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireRoles(domain.RoleAdministrator)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
