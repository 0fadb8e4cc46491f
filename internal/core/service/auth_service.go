package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/api/metrics"
	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

// dummyHash is a well-formed bcrypt hash compared against when the username
// does not exist, so response timing does not reveal which usernames are
// registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	repo     ports.AuthRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	log      zerolog.Logger
}

// NewAuthService wires the login and logout use cases. denylist may be nil,
// in which case logout is a no-op and tokens stay valid until expiry.
func NewAuthService(
	repo ports.AuthRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	denylist ports.TokenDenylist,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		denylist: denylist,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			// Burn a comparison so unknown usernames cost the same as
			// wrong passwords.
			s.hasher.Verify(in.Password, dummyHash)
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.NewInvalidCredentials()
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// The status gate comes before the password check: a correct password
	// against a disabled account must not behave differently from a wrong
	// one afterwards.
	if user.Status == domain.StatusInactive {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		s.log.Warn().Str("username", in.Username).Msg("login rejected for inactive account")
		return nil, domain.NewAccountInactive()
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Debug().Str("username", in.Username).Msg("login rejected for bad password")
		return nil, domain.NewInvalidCredentials()
	}

	principal := domain.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}
	token, expiresAt, err := s.tokens.Issue(principal)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, domain.NewInternal("issue token", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: principal}, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.denylist == nil {
		return nil
	}
	if err := s.denylist.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		return domain.NewInternal("revoke token", err)
	}
	s.log.Info().Str("token_id", tokenID).Msg("token revoked")
	return nil
}
