package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type schemeService struct {
	repo ports.SchemeRepository
}

// NewSchemeService wires the vaccination calendar use cases.
func NewSchemeService(repo ports.SchemeRepository) ports.SchemeService {
	return &schemeService{repo: repo}
}

func (s *schemeService) List(ctx context.Context, countryID string) ([]domain.SchemeEntry, error) {
	return s.repo.List(ctx, countryID)
}

func (s *schemeService) Get(ctx context.Context, id string) (*domain.SchemeEntry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *schemeService) Create(ctx context.Context, in ports.SchemeInput) (string, error) {
	return s.repo.Create(ctx, &domain.SchemeEntry{
		CountryID:  in.CountryID,
		VaccineID:  in.VaccineID,
		DoseNumber: in.DoseNumber,
		AgeMonths:  in.AgeMonths,
	})
}

func (s *schemeService) Update(ctx context.Context, id string, in ports.SchemeInput) error {
	return s.repo.Update(ctx, &domain.SchemeEntry{
		ID:         id,
		CountryID:  in.CountryID,
		VaccineID:  in.VaccineID,
		DoseNumber: in.DoseNumber,
		AgeMonths:  in.AgeMonths,
	})
}

func (s *schemeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
