package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

type userService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

// NewUserService wires the user provisioning use cases.
func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, hasher: hasher, log: log}
}

func (s *userService) Create(ctx context.Context, in ports.CreateUserInput) (string, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", domain.NewInternal("hash password", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       domain.StatusActive,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", in.Username).Str("role", string(in.Role)).Msg("user created")
	return id, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) SetStatus(ctx context.Context, id string, status domain.UserStatus) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("status", string(status)).Msg("user status changed")
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, id string, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.NewInternal("hash password", err)
	}
	if err := s.repo.SetPassword(ctx, id, hash); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user password reset")
	return nil
}
