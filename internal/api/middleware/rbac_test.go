package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/token"
)

func contextWithClaims(roles []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if roles != nil {
		c.Set(claimsKey, &token.Claims{UserID: "acc-1", Roles: roles})
	}
	return c
}

func TestRequireRole_FlatHierarchy(t *testing.T) {
	cases := []struct {
		roles    []string
		required string
		allowed  bool
	}{
		{[]string{domain.RoleEmployee}, domain.RoleAdmin, false},
		{[]string{domain.RoleAdmin}, domain.RoleEmployee, true},
		{[]string{domain.RoleEmployee}, domain.RoleEmployee, true},
		{[]string{domain.RoleAdmin}, domain.RoleAdmin, true},
	}

	for _, tc := range cases {
		c := contextWithClaims(tc.roles)
		called := false
		handler := RequireRole(tc.required)(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		err := handler(c)
		if tc.allowed {
			if err != nil || !called {
				t.Fatalf("roles %v vs %s: expected allow, got err=%v called=%v", tc.roles, tc.required, err, called)
			}
			continue
		}
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("roles %v vs %s: expected ErrForbidden, got %v", tc.roles, tc.required, err)
		}
		if called {
			t.Fatalf("roles %v vs %s: next called on deny", tc.roles, tc.required)
		}
	}
}

func TestRequireRole_NoClaims(t *testing.T) {
	c := contextWithClaims(nil)
	handler := RequireRole(domain.RoleAdmin)(func(echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// A request that never authenticated is unauthenticated, not forbidden.
	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
