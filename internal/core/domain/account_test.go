package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAccount_PasswordHashNeverSerialized(t *testing.T) {
	account := Account{
		ID:           "a1",
		Name:         "Alice",
		Email:        "alice@example.com",
		Roles:        []string{RoleEmployee},
		PasswordHash: "$2a$10$secret-material",
	}

	raw, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("marshal account: %v", err)
	}
	if strings.Contains(string(raw), "secret-material") || strings.Contains(string(raw), "password") {
		t.Fatalf("password hash leaked into JSON: %s", raw)
	}
}

func TestAccount_HasRole(t *testing.T) {
	account := Account{Roles: []string{RoleEmployee}}
	if !account.HasRole(RoleEmployee) {
		t.Fatalf("expected Employee role")
	}
	if account.HasRole(RoleAdmin) {
		t.Fatalf("unexpected Admin role")
	}
}

func TestIdentifierIsEmail(t *testing.T) {
	if !IdentifierIsEmail("user@example.com") {
		t.Fatalf("expected email classification")
	}
	if IdentifierIsEmail("9999999999") {
		t.Fatalf("expected contact classification")
	}
}

func TestValidRoleName(t *testing.T) {
	if !ValidRoleName(RoleAdmin) || !ValidRoleName(RoleEmployee) {
		t.Fatalf("base roles must validate")
	}
	if ValidRoleName("Superuser") {
		t.Fatalf("closed enumeration must reject unknown names")
	}
}
