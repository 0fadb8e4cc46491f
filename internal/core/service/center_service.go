package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type centerService struct {
	repo ports.CenterRepository
}

// NewCenterService wires the health center use cases.
func NewCenterService(repo ports.CenterRepository) ports.CenterService {
	return &centerService{repo: repo}
}

func (s *centerService) List(ctx context.Context, countryID string) ([]domain.HealthCenter, error) {
	return s.repo.List(ctx, countryID)
}

func (s *centerService) Get(ctx context.Context, id string) (*domain.HealthCenter, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *centerService) Create(ctx context.Context, in ports.CenterInput) (string, error) {
	status := in.Status
	if status == "" {
		status = "Activo"
	}
	return s.repo.Create(ctx, &domain.HealthCenter{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CountryID: in.CountryID,
		Status:    status,
	})
}

func (s *centerService) Update(ctx context.Context, id string, in ports.CenterInput) error {
	return s.repo.Update(ctx, &domain.HealthCenter{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CountryID: in.CountryID,
		Status:    in.Status,
	})
}

func (s *centerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
