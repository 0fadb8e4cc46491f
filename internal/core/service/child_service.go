package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type childService struct {
	repo ports.ChildRepository
	log  zerolog.Logger
}

// NewChildService wires the child registry use cases.
func NewChildService(repo ports.ChildRepository, log zerolog.Logger) ports.ChildService {
	return &childService{repo: repo, log: log}
}

func (s *childService) List(ctx context.Context) ([]domain.Child, error) {
	return s.repo.List(ctx)
}

func (s *childService) ListByTutor(ctx context.Context, tutorID string) ([]domain.Child, error) {
	return s.repo.ListByTutor(ctx, tutorID)
}

func (s *childService) Get(ctx context.Context, id string) (*domain.Child, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *childService) Create(ctx context.Context, in ports.ChildInput) (string, error) {
	id, err := s.repo.Create(ctx, &domain.Child{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IdentityDocument: in.IdentityDocument,
		BirthDate:        in.BirthDate,
		Gender:           in.Gender,
		CountryID:        in.CountryID,
	})
	if err != nil {
		return "", err
	}
	s.log.Info().Str("child_id", id).Str("identity_document", in.IdentityDocument).Msg("child registered")
	return id, nil
}

func (s *childService) Update(ctx context.Context, id string, in ports.ChildInput) error {
	return s.repo.Update(ctx, &domain.Child{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IdentityDocument: in.IdentityDocument,
		BirthDate:        in.BirthDate,
		Gender:           in.Gender,
		CountryID:        in.CountryID,
	})
}

func (s *childService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *childService) LinkTutor(ctx context.Context, childID string, in ports.LinkTutorInput) error {
	err := s.repo.LinkTutor(ctx, &domain.ChildTutor{
		ChildID:      childID,
		TutorID:      in.TutorID,
		Relationship: in.Relationship,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("child_id", childID).Str("tutor_id", in.TutorID).Msg("tutor linked to child")
	return nil
}
