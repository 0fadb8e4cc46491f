package service

import (
	"context"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type vaccineService struct {
	repo ports.VaccineRepository
}

// NewVaccineService wires the vaccine catalog use cases.
func NewVaccineService(repo ports.VaccineRepository) ports.VaccineService {
	return &vaccineService{repo: repo}
}

func (s *vaccineService) List(ctx context.Context) ([]domain.Vaccine, error) {
	return s.repo.List(ctx)
}

func (s *vaccineService) Get(ctx context.Context, id string) (*domain.Vaccine, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *vaccineService) Create(ctx context.Context, in ports.VaccineInput) (string, error) {
	return s.repo.Create(ctx, &domain.Vaccine{Name: in.Name, Description: in.Description, Doses: in.Doses})
}

func (s *vaccineService) Update(ctx context.Context, id string, in ports.VaccineInput) error {
	return s.repo.Update(ctx, &domain.Vaccine{ID: id, Name: in.Name, Description: in.Description, Doses: in.Doses})
}

func (s *vaccineService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type lotService struct {
	repo ports.LotRepository
}

// NewLotService wires the vaccine lot use cases.
func NewLotService(repo ports.LotRepository) ports.LotService {
	return &lotService{repo: repo}
}

func (s *lotService) ListByVaccine(ctx context.Context, vaccineID string) ([]domain.Lot, error) {
	return s.repo.ListByVaccine(ctx, vaccineID)
}

func (s *lotService) Get(ctx context.Context, id string) (*domain.Lot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *lotService) Create(ctx context.Context, in ports.LotInput) (string, error) {
	return s.repo.Create(ctx, &domain.Lot{
		VaccineID:  in.VaccineID,
		LotNumber:  in.LotNumber,
		Quantity:   in.Quantity,
		ExpiryDate: in.ExpiryDate,
	})
}

func (s *lotService) Update(ctx context.Context, id string, in ports.LotInput) error {
	return s.repo.Update(ctx, &domain.Lot{
		ID:         id,
		LotNumber:  in.LotNumber,
		Quantity:   in.Quantity,
		ExpiryDate: in.ExpiryDate,
	})
}

func (s *lotService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
