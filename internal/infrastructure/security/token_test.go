package security

import (
	"testing"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

func TestNewJWTService_EmptySecret(t *testing.T) {
	if _, err := NewJWTService("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p := domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor}
	token, expiresAt, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry must be in the future")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.Username != "juanperez" || claims.Role != domain.RoleDoctor {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.TokenID == "" {
		t.Fatalf("token id not set")
	}
	if claims.ExpiresAt.Unix() != expiresAt.Unix() {
		t.Fatalf("expiry mismatch: %v vs %v", claims.ExpiresAt, expiresAt)
	}
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p := domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor}
	t1, _, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	t2, _, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c1, err := svc.Verify(t1)
	if err != nil {
		t.Fatalf("verify t1: %v", err)
	}
	c2, err := svc.Verify(t2)
	if err != nil {
		t.Fatalf("verify t2: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("token ids must be unique per issue")
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService("test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	// Negative ttl falls back to an hour, so build an already expired
	// service the long way round.
	svc.ttl = -time.Minute

	p := domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor}
	token, _, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Verify(token)
	if err == nil {
		t.Fatalf("expected error for expired token")
	}
	if !domain.IsKind(err, domain.KindTokenExpired) {
		t.Fatalf("expected token expired kind, got %v", err)
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	other, err := NewJWTService("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p := domain.Principal{UserID: "u-1", Username: "juanperez", Role: domain.RoleDoctor}
	token, _, err := other.Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Verify(token)
	if err == nil {
		t.Fatalf("expected error for wrong signature")
	}
	if !domain.IsKind(err, domain.KindTokenInvalid) {
		t.Fatalf("expected token invalid kind, got %v", err)
	}

	if _, err := svc.Verify("not.a.token"); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}
