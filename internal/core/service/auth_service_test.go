package service

import (
	"context"
	"testing"
	"time"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type stubAuthRepo struct {
	users map[string]*domain.User
	err   error
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.NewNotFound("user")
	}
	clone := *u
	return &clone, nil
}

type stubHasher struct {
	verifyCalls int
}

func (h *stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (h *stubHasher) Verify(plain, hash string) bool {
	h.verifyCalls++
	return hash == "hashed:"+plain
}

type stubTokens struct {
	issued []domain.Principal
	err    error
}

func (s *stubTokens) Issue(p domain.Principal) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.issued = append(s.issued, p)
	return "tok-123", time.Now().Add(time.Hour), nil
}

func (s *stubTokens) Verify(string) (*ports.TokenClaims, error) {
	return nil, domain.NewTokenInvalid(nil)
}

type stubDenylist struct {
	revoked map[string]time.Duration
	checked []string
	hit     bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.checked = append(d.checked, tokenID)
	return d.hit, nil
}

func activeUser() *domain.User {
	return &domain.User{
		ID:           "u-1",
		Username:     "juanperez",
		PasswordHash: "hashed:secret123",
		Role:         domain.RoleDoctor,
		Status:       domain.StatusActive,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubAuthRepo{users: map[string]*domain.User{"juanperez": activeUser()}}
	hasher := &stubHasher{}
	tokens := &stubTokens{}
	svc := NewAuthService(repo, hasher, tokens, nil, testLogger())

	res, err := svc.Login(context.Background(), ports.LoginInput{Username: "juanperez", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "tok-123" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if res.User.UserID != "u-1" || res.User.Username != "juanperez" || res.User.Role != domain.RoleDoctor {
		t.Fatalf("unexpected principal %+v", res.User)
	}
	if len(tokens.issued) != 1 {
		t.Fatalf("expected one issued token, got %d", len(tokens.issued))
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &stubAuthRepo{users: map[string]*domain.User{}}
	hasher := &stubHasher{}
	svc := NewAuthService(repo, hasher, &stubTokens{}, nil, testLogger())

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "ghost", Password: "whatever"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if hasher.verifyCalls != 1 {
		t.Fatalf("expected a dummy hash comparison, got %d calls", hasher.verifyCalls)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubAuthRepo{users: map[string]*domain.User{"juanperez": activeUser()}}
	svc := NewAuthService(repo, &stubHasher{}, &stubTokens{}, nil, testLogger())

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "juanperez", Password: "wrong"})
	if !domain.IsKind(err, domain.KindInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	inactive := activeUser()
	inactive.Status = domain.StatusInactive
	repo := &stubAuthRepo{users: map[string]*domain.User{"juanperez": inactive}}
	hasher := &stubHasher{}
	svc := NewAuthService(repo, hasher, &stubTokens{}, nil, testLogger())

	// Even with the correct password, the status gate rejects first.
	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "juanperez", Password: "secret123"})
	if !domain.IsKind(err, domain.KindAccountInactive) {
		t.Fatalf("expected account inactive, got %v", err)
	}
	if err.Error() != "User account is inactive" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if hasher.verifyCalls != 0 {
		t.Fatalf("password must not be checked for inactive accounts")
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &stubAuthRepo{err: domain.NewInternal("store down", nil)}
	svc := NewAuthService(repo, &stubHasher{}, &stubTokens{}, nil, testLogger())

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "juanperez", Password: "x"})
	if !domain.IsKind(err, domain.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	denylist := newStubDenylist()
	repo := &stubAuthRepo{users: map[string]*domain.User{}}
	svc := NewAuthService(repo, &stubHasher{}, &stubTokens{}, denylist, testLogger())

	expiresAt := time.Now().Add(30 * time.Minute)
	if err := svc.Logout(context.Background(), "jti-1", expiresAt); err != nil {
		t.Fatalf("logout: %v", err)
	}

	ttl, ok := denylist.revoked["jti-1"]
	if !ok {
		t.Fatalf("token id not revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("ttl must match the remaining lifetime, got %v", ttl)
	}
}

func TestAuthService_Logout_NoDenylist(t *testing.T) {
	repo := &stubAuthRepo{users: map[string]*domain.User{}}
	svc := NewAuthService(repo, &stubHasher{}, &stubTokens{}, nil, testLogger())

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("logout without denylist must be a no-op, got %v", err)
	}
}
