package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pnvi/immunization-api/internal/api/metrics"
	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	// PrincipalKey holds the *domain.Principal of the verified token.
	PrincipalKey = "principal"
	// ClaimsKey holds the *ports.TokenClaims, needed by logout for the
	// token id and expiry.
	ClaimsKey = "token_claims"
)

// PrincipalFrom returns the authenticated identity attached by Auth, or
// false when the middleware did not run on this route.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*domain.Principal)
	return p, ok
}

// ClaimsFrom returns the verified token claims attached by Auth.
func ClaimsFrom(c echo.Context) (*ports.TokenClaims, bool) {
	cl, ok := c.Get(ClaimsKey).(*ports.TokenClaims)
	return cl, ok
}

// Auth verifies the bearer token and injects the principal into context.
// denylist may be nil; when set, revoked token ids are rejected as invalid.
// Every accepted and rejected token leaves an audit log entry.
func Auth(tokens ports.TokenService, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, log, "missing", domain.NewTokenMissing())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, log, "malformed", domain.NewTokenInvalid(nil))
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				reason := "invalid"
				if domain.IsKind(err, domain.KindTokenExpired) {
					reason = "expired"
				}
				return reject(c, log, reason, err)
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					return domain.NewInternal("revocation check", err)
				}
				if revoked {
					return reject(c, log, "revoked", domain.NewTokenInvalid(nil))
				}
			}

			c.Set(PrincipalKey, &domain.Principal{
				UserID:   claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			})
			c.Set(ClaimsKey, claims)

			log.Debug().
				Str("username", claims.Username).
				Str("role", string(claims.Role)).
				Str("remote_ip", c.RealIP()).
				Msg("request authenticated")

			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, reason string, err error) error {
	metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
	log.Warn().
		Str("reason", reason).
		Str("remote_ip", c.RealIP()).
		Str("path", c.Path()).
		Msg("request rejected by auth middleware")
	return err
}
