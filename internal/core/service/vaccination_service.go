package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type vaccinationService struct {
	repo ports.VaccinationRepository
	log  zerolog.Logger
}

// NewVaccinationService wires the applied dose use cases. Stock, expiry and
// duplicate dose rules live in the store procedures; this layer only adds
// defaults and the audit trail.
func NewVaccinationService(repo ports.VaccinationRepository, log zerolog.Logger) ports.VaccinationService {
	return &vaccinationService{repo: repo, log: log}
}

func (s *vaccinationService) Record(ctx context.Context, in ports.RecordVaccinationInput) (string, error) {
	appliedAt := in.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = time.Now()
	}

	id, err := s.repo.Create(ctx, &domain.Vaccination{
		ChildID:   in.ChildID,
		LotID:     in.LotID,
		SchemeID:  in.SchemeID,
		CenterID:  in.CenterID,
		AppliedBy: in.AppliedBy,
		AppliedAt: appliedAt,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("vaccination_id", id).
		Str("child_id", in.ChildID).
		Str("lot_id", in.LotID).
		Str("applied_by", in.AppliedBy).
		Msg("dose recorded")
	return id, nil
}

func (s *vaccinationService) Get(ctx context.Context, id string) (*domain.Vaccination, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *vaccinationService) HistoryByChild(ctx context.Context, childID string) ([]domain.HistoryEntry, error) {
	return s.repo.HistoryByChild(ctx, childID)
}

func (s *vaccinationService) Void(ctx context.Context, id string) error {
	if err := s.repo.Void(ctx, id); err != nil {
		return err
	}
	s.log.Warn().Str("vaccination_id", id).Msg("dose voided")
	return nil
}
