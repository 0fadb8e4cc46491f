package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pnvi/immunization-api/internal/core/domain"
)

// RequireRoles enforces role-based access control. It must run after Auth:
// a missing principal means the route was wired without authentication,
// which is a programming error and surfaces as a 500, never as an allow.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.NewInternal("role gate reached without an authenticated principal", nil)
			}
			if _, ok := allowed[p.Role]; !ok {
				return domain.NewForbidden()
			}
			return next(c)
		}
	}
}
