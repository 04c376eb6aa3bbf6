package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
	"github.com/medistaff/staffdir/internal/core/token"
)

func seedAccount(t *testing.T, repo *stubAccountRepo, email, contact, password string, roles ...string) *domain.Account {
	t.Helper()
	hash, err := stubHasher{}.Hash(context.Background(), password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.Account{
		Name:         "Test User",
		Email:        email,
		Contact:      contact,
		Roles:        roles,
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return created
}

func newTestAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, stubHasher{}, token.NewCodec("secret"), zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "carol@example.com", "5551234", "s3cret99", domain.RoleAdmin)
	svc := newTestAuthService(repo)

	signed, got, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if got == nil || got.ID != account.ID {
		t.Fatalf("unexpected account: %+v", got)
	}

	claims, err := token.NewCodec("secret").Parse(signed)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != account.ID {
		t.Fatalf("subject mismatch: %s", claims.UserID)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleAdmin {
		t.Fatalf("roles not snapshotted: %v", claims.Roles)
	}
}

func TestAuthService_Login_ContactIdentifier(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "dave@example.com", "9990001", "goodpass", domain.RoleEmployee)
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "9990001", "goodpass"); err != nil {
		t.Fatalf("contact login failed: %v", err)
	}

	// An email-shaped identifier must never fall back to contact lookup.
	if _, _, err := svc.Login(context.Background(), "9990001@example.com", "goodpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "", "longenough"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty identifier, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", "short"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for short password, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("validation failures must not reach the repository, got %d lookups", repo.lookups)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "erin@example.com", "", "rightpass", domain.RoleEmployee)
	svc := newTestAuthService(repo)

	_, _, wrongPassword := svc.Login(context.Background(), "erin@example.com", "wrongpass")
	_, _, unknownUser := svc.Login(context.Background(), "ghost@example.com", "whatever99")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}

var _ ports.AuthService = (*AuthService)(nil)
