package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medistaff/staffdir/internal/core/domain"
)

type stubAuthService struct {
	identifier string
	password   string
	account    *domain.Account
}

func (s *stubAuthService) Login(_ context.Context, identifier, password string) (string, *domain.Account, error) {
	if identifier == s.identifier && password == s.password {
		return "tok-123", s.account, nil
	}
	return "", nil, domain.ErrInvalidCredentials
}

func newLoginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func adminStub() *stubAuthService {
	return &stubAuthService{
		identifier: "admin@example.com",
		password:   "admin123",
		account: &domain.Account{
			ID:           "acc-1",
			Name:         "Admin",
			Email:        "admin@example.com",
			Contact:      "9999999999",
			Roles:        []string{domain.RoleAdmin},
			PasswordHash: "$2a$10$must-not-leak",
		},
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(adminStub())
	c, rec := newLoginContext(`{"identifier":"admin@example.com","password":"admin123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID    string   `json:"id"`
			Name  string   `json:"name"`
			Email string   `json:"email"`
			Roles []string `json:"roles"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body.Token != "tok-123" {
		t.Fatalf("missing token: %+v", body)
	}
	if body.User.ID != "acc-1" || len(body.User.Roles) != 1 {
		t.Fatalf("unexpected user: %+v", body.User)
	}
	if strings.Contains(rec.Body.String(), "must-not-leak") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(adminStub())
	c, _ := newLoginContext(`{"identifier":"admin@example.com","password":"wrongpass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_ValidationRejectsBeforeService(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	cases := []string{
		`{"identifier":"","password":"admin123"}`,
		`{"identifier":"admin@example.com","password":"short"}`,
	}

	for _, body := range cases {
		c, _ := newLoginContext(body)
		err := h.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}
