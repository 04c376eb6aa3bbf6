package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
)

const (
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"
	defaultAdminContact  = "9999999999"
)

// Seed makes sure the base role catalog exists and provisions the default
// admin account when no account holds the Admin role. It is idempotent and
// safe to run on every deploy.
func Seed(ctx context.Context, accounts ports.AccountRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	for _, name := range domain.BaseRoleNames() {
		_, err := roles.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("lookup role %s: %w", name, err)
		}
		if _, err := roles.Create(ctx, &domain.Role{Name: name}); err != nil && !errors.Is(err, domain.ErrRoleExists) {
			return fmt.Errorf("create role %s: %w", name, err)
		}
		log.Info().Str("role", name).Msg("created base role")
	}

	n, err := accounts.CountWithRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admin accounts: %w", err)
	}
	if n > 0 {
		log.Info().Msg("admin account already exists, skipping seed")
		return nil
	}

	hash, err := hasher.Hash(ctx, defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	if _, err := accounts.Create(ctx, &domain.Account{
		Name:         "Admin",
		Email:        defaultAdminEmail,
		Contact:      defaultAdminContact,
		Roles:        []string{domain.RoleAdmin},
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	log.Info().Str("email", defaultAdminEmail).Msg("created default admin account")
	return nil
}
