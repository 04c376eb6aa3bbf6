package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/medistaff/staffdir/internal/api/metrics"
	"github.com/medistaff/staffdir/internal/core/domain"
)

// RequireRole gates a route on the flat role hierarchy: the request passes
// when the claims carry the required role or the Admin role. It must run
// after Auth; a request that never authenticated is rejected as missing a
// token, not as forbidden.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return domain.ErrMissingToken
			}

			if !claims.Satisfies(required) {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny").Inc()
				return domain.ErrForbidden
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}
