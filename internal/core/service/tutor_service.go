package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type tutorService struct {
	repo ports.TutorRepository
}

// NewTutorService wires the tutor use cases.
func NewTutorService(repo ports.TutorRepository) ports.TutorService {
	return &tutorService{repo: repo}
}

func (s *tutorService) List(ctx context.Context) ([]domain.Tutor, error) {
	return s.repo.List(ctx)
}

func (s *tutorService) Get(ctx context.Context, id string) (*domain.Tutor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *tutorService) Create(ctx context.Context, in ports.TutorInput) (string, error) {
	return s.repo.Create(ctx, &domain.Tutor{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IdentityDocument: in.IdentityDocument,
		Phone:            in.Phone,
		Email:            in.Email,
	})
}

func (s *tutorService) Update(ctx context.Context, id string, in ports.TutorInput) error {
	return s.repo.Update(ctx, &domain.Tutor{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IdentityDocument: in.IdentityDocument,
		Phone:            in.Phone,
		Email:            in.Email,
	})
}

func (s *tutorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
