package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func newTestAccountService(repo *stubAccountRepo) *AccountService {
	return NewAccountService(repo, stubHasher{}, zerolog.Nop())
}

func TestAccountService_Create_DefaultsToEmployee(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo)

	created, err := svc.Create(context.Background(), ports.CreateAccountInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "bobpass1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(created.Roles) != 1 || created.Roles[0] != domain.RoleEmployee {
		t.Fatalf("expected default Employee role, got %v", created.Roles)
	}
	if created.PasswordHash == "bobpass1" || created.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
}

func TestAccountService_Create_Validation(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo())

	cases := []ports.CreateAccountInput{
		{Name: "", Email: "a@example.com", Password: "longenough"},
		{Name: "A", Email: "", Password: "longenough"},
		{Name: "A", Email: "a@example.com", Password: "short"},
		{Name: "A", Email: "a@example.com", Password: "longenough", Roles: []string{"Superuser"}},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAccountService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo)

	input := ports.CreateAccountInput{Name: "Bob", Email: "bob@example.com", Password: "bobpass1"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAccountService_Update_RehashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo)

	created, err := svc.Create(context.Background(), ports.CreateAccountInput{
		Name: "Carol", Email: "carol@example.com", Password: "original1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := repo.accounts[created.ID].PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateAccountInput{
		Password: strPtr("replaced1"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == before || updated.PasswordHash == "replaced1" {
		t.Fatalf("password not re-hashed")
	}

	ok, err := stubHasher{}.Compare(context.Background(), updated.PasswordHash, "replaced1")
	if err != nil || !ok {
		t.Fatalf("new hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestAccountService_Update_RoleInvariants(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo)

	created, err := svc.Create(context.Background(), ports.CreateAccountInput{
		Name: "Dan", Email: "dan@example.com", Password: "danpass1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// An account can never end up with zero roles.
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateAccountInput{Roles: []string{}}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty role set, got %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateAccountInput{Roles: []string{"Intern"}}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateAccountInput{Roles: []string{domain.RoleAdmin}})
	if err != nil {
		t.Fatalf("role update failed: %v", err)
	}
	if !updated.HasRole(domain.RoleAdmin) {
		t.Fatalf("role not applied: %v", updated.Roles)
	}
}

func TestAccountService_Update_NotFound(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo())
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateAccountInput{Name: strPtr("X")}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
