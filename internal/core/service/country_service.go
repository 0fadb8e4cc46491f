package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type countryService struct {
	repo ports.CountryRepository
}

// NewCountryService wires the country catalog use cases.
func NewCountryService(repo ports.CountryRepository) ports.CountryService {
	return &countryService{repo: repo}
}

func (s *countryService) List(ctx context.Context) ([]domain.Country, error) {
	return s.repo.List(ctx)
}

func (s *countryService) Get(ctx context.Context, id string) (*domain.Country, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *countryService) Create(ctx context.Context, in ports.CountryInput) (string, error) {
	return s.repo.Create(ctx, &domain.Country{Name: in.Name, Code: in.Code})
}

func (s *countryService) Update(ctx context.Context, id string, in ports.CountryInput) error {
	return s.repo.Update(ctx, &domain.Country{ID: id, Name: in.Name, Code: in.Code})
}

func (s *countryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
