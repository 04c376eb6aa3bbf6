package domain

import (
	"strings"
	"time"
)

// Account models a member of the healthcare staff directory.
// PasswordHash is never serialized; Roles is always non-empty.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact,omitempty"`
	Roles        []string  `json:"roles"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the account holds the named role.
func (a *Account) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// IdentifierIsEmail decides which lookup strategy a login identifier selects.
// Anything containing '@' is treated as an email, everything else as a
// contact number. Exactly one strategy applies; there is no fallback.
func IdentifierIsEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}
