package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/infrastructure/security"
)

var (
	routerOnce   sync.Once
	routerSrv    *httptest.Server
	routerMock   sqlmock.Sqlmock
	routerTokens *security.JWTService
)

// newTestRouter wires the full route table over a mock store, once for the
// whole package (the prometheus middleware registers collectors globally).
// Tests that expect the request to be rejected before the business handler
// register no query expectations: any store call then fails the test.
func newTestRouter(t *testing.T) (*httptest.Server, sqlmock.Sqlmock, *security.JWTService) {
	t.Helper()

	routerOnce.Do(func() {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}

		tokens, err := security.NewJWTService("router-test-secret", time.Hour)
		if err != nil {
			t.Fatalf("token service: %v", err)
		}

		e := NewRouter(Deps{DB: db, Tokens: tokens, Log: zerolog.Nop()})

		routerSrv = httptest.NewServer(e)
		routerMock = mock
		routerTokens = tokens
	})

	return routerSrv, routerMock, routerTokens
}

func issueToken(t *testing.T, tokens *security.JWTService, role domain.Role) string {
	t.Helper()
	signed, _, err := tokens.Issue(domain.Principal{UserID: "u-1", Username: "juanperez", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func doGet(t *testing.T, url, token string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	srv, mock, _ := newTestRouter(t)

	resp, body := doGet(t, srv.URL+"/api/v1/children", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["error"] != "missing authorization header" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store must not be touched: %v", err)
	}
}

func TestRouter_ManagerRouteWithDoctorToken(t *testing.T) {
	srv, mock, tokens := newTestRouter(t)
	token := issueToken(t, tokens, domain.RoleDoctor)

	resp, body := doGet(t, srv.URL+"/api/v1/reports/coverage?from=2026-01-01&to=2026-06-30", token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if body["error"] != "insufficient permissions" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store must not be touched: %v", err)
	}
}

func TestRouter_AdminRouteWithUserToken(t *testing.T) {
	srv, mock, tokens := newTestRouter(t)
	token := issueToken(t, tokens, domain.RoleUser)

	resp, _ := doGet(t, srv.URL+"/api/v1/users", token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store must not be touched: %v", err)
	}
}

func TestRouter_PermittedRoleReachesHandler(t *testing.T) {
	srv, mock, tokens := newTestRouter(t)
	token := issueToken(t, tokens, domain.RoleDoctor)

	mock.ExpectQuery("CALL sp_countries_list").
		WillReturnRows(sqlmock.NewRows([]string{"country_id", "name", "code"}).
			AddRow("11111111-1111-1111-1111-111111111111", "Nicaragua", "NI"))

	resp, _ := doGet(t, srv.URL+"/api/v1/countries", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected the list procedure call: %v", err)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	srv, _, _ := newTestRouter(t)

	resp, body := doGet(t, srv.URL+"/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
