package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medistaff/staffdir/internal/api/metrics"
	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/token"
)

const bearerPrefix = "Bearer "

const claimsKey = "auth_claims"

// Auth validates the bearer token and injects the decoded claims into the
// request context. The prefix check is exact, "Bearer " with a single space,
// case-sensitive; an absent header and a malformed prefix are the same
// failure. No database lookup happens here; the claims are the snapshot
// taken at issuance.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			claims, err := codec.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Auth, or nil when the middleware
// has not run for this request.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsKey).(*token.Claims)
	return claims
}
