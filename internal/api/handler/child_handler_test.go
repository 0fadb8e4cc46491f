package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type stubChildService struct {
	ports.ChildService

	getFn    func(ctx context.Context, id string) (*domain.Child, error)
	createFn func(ctx context.Context, in ports.ChildInput) (string, error)
}

func (s *stubChildService) Get(ctx context.Context, id string) (*domain.Child, error) {
	return s.getFn(ctx, id)
}

func (s *stubChildService) Create(ctx context.Context, in ports.ChildInput) (string, error) {
	return s.createFn(ctx, in)
}

func TestChildHandler_Get_Success(t *testing.T) {
	const id = "11111111-1111-1111-1111-111111111111"
	stub := &stubChildService{
		getFn: func(_ context.Context, gotID string) (*domain.Child, error) {
			if gotID != id {
				t.Fatalf("unexpected id: %s", gotID)
			}
			return &domain.Child{ID: id, FirstName: "Ana", LastName: "Gomez"}, nil
		},
	}
	h := NewChildHandler(stub)

	c, rec := jsonContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["child_id"] != id || resp["first_name"] != "Ana" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestChildHandler_Get_NotFound(t *testing.T) {
	stub := &stubChildService{
		getFn: func(_ context.Context, _ string) (*domain.Child, error) {
			return nil, domain.NewNotFound("child")
		},
	}
	h := NewChildHandler(stub)

	c, _ := jsonContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("11111111-1111-1111-1111-111111111111")

	err := h.Get(c)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestChildHandler_Get_MalformedID(t *testing.T) {
	called := false
	stub := &stubChildService{
		getFn: func(_ context.Context, _ string) (*domain.Child, error) {
			called = true
			return nil, nil
		},
	}
	h := NewChildHandler(stub)

	c, _ := jsonContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Get(c)
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Fatalf("service must not run on a malformed id")
	}
}

func TestChildHandler_Create_Success(t *testing.T) {
	stub := &stubChildService{
		createFn: func(_ context.Context, in ports.ChildInput) (string, error) {
			if in.FirstName != "Ana" || in.Gender != domain.GenderFemale {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.BirthDate.Format(dateLayout) != "2023-04-01" {
				t.Fatalf("birth date not parsed: %v", in.BirthDate)
			}
			return "22222222-2222-2222-2222-222222222222", nil
		},
	}
	h := NewChildHandler(stub)

	body := `{"first_name":"Ana","last_name":"Gomez","identity_document":"X-1234",
		"birth_date":"2023-04-01","gender":"F","country_id":"11111111-1111-1111-1111-111111111111"}`
	c, rec := jsonContext(t, http.MethodPost, "/", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "22222222-2222-2222-2222-222222222222" {
		t.Fatalf("expected new id in response, got %+v", resp)
	}
}

func TestChildHandler_Create_ConstraintPassthrough(t *testing.T) {
	stub := &stubChildService{
		createFn: func(_ context.Context, _ ports.ChildInput) (string, error) {
			return "", domain.NewConstraint("identity document already registered", nil)
		},
	}
	h := NewChildHandler(stub)

	body := `{"first_name":"Ana","last_name":"Gomez","identity_document":"X-1234",
		"birth_date":"2023-04-01","gender":"F","country_id":"11111111-1111-1111-1111-111111111111"}`
	c, _ := jsonContext(t, http.MethodPost, "/", body)

	err := h.Create(c)
	if !domain.IsKind(err, domain.KindConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
	if err.Error() != "identity document already registered" {
		t.Fatalf("store message must pass through, got %q", err.Error())
	}
}

func TestChildHandler_Create_InvalidBody(t *testing.T) {
	called := false
	stub := &stubChildService{
		createFn: func(_ context.Context, _ ports.ChildInput) (string, error) {
			called = true
			return "", nil
		},
	}
	h := NewChildHandler(stub)

	c, _ := jsonContext(t, http.MethodPost, "/", `{"first_name":"Ana","gender":"Z"}`)

	err := h.Create(c)
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Fatalf("service must not run on validation failure")
	}
}
