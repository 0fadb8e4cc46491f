package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/infrastructure/security"
)

const testSecret = "test-secret"

func testTokens(t *testing.T) *security.JWTService {
	t.Helper()
	svc, err := security.NewJWTService(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func authContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubDenylist struct {
	revoked map[string]bool
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], nil
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := testTokens(t)
	signed, _, err := tokens.Issue(domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := authContext(t, "Bearer "+signed)

	called := false
	mw := Auth(tokens, nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if p.UserID != "u-1" || p.Username != "juanperez" || p.Role != domain.RoleDoctor {
			t.Fatalf("unexpected principal: %+v", p)
		}
		if _, ok := ClaimsFrom(c); !ok {
			t.Fatalf("claims not attached")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	c, _ := authContext(t, "")

	mw := Auth(testTokens(t), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindTokenMissing) {
		t.Fatalf("expected token-missing error, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "bearer"} {
		c, _ := authContext(t, header)

		mw := Auth(testTokens(t), nil, zerolog.Nop())
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		err := handler(c)
		if !domain.IsKind(err, domain.KindTokenInvalid) {
			t.Fatalf("header %q: expected token-invalid error, got %v", header, err)
		}
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	other, err := security.NewJWTService("a-different-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	signed, _, err := other.Issue(domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := authContext(t, "Bearer "+signed)

	mw := Auth(testTokens(t), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !domain.IsKind(err, domain.KindTokenInvalid) {
		t.Fatalf("expected token-invalid error, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	// Signed with the right secret but already past exp; claim content is
	// otherwise valid.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "u-1",
		"username": "juanperez",
		"role":     "doctor",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c, _ := authContext(t, "Bearer "+signed)

	mw := Auth(testTokens(t), nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !domain.IsKind(err, domain.KindTokenExpired) {
		t.Fatalf("expected token-expired error, got %v", err)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	tokens := testTokens(t)
	signed, expiresAt, err := tokens.Issue(domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}

	denylist := &stubDenylist{revoked: map[string]bool{}}
	if err := denylist.Revoke(context.Background(), claims.TokenID, time.Until(expiresAt)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	c, _ := authContext(t, "Bearer "+signed)

	mw := Auth(tokens, denylist, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !domain.IsKind(err, domain.KindTokenInvalid) {
		t.Fatalf("expected token-invalid error, got %v", err)
	}
}
