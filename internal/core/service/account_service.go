package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
)

// AccountService implements the admin-only account provisioning operations.
type AccountService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, hasher: hasher, logger: logger}
}

// Create provisions a new staff account. Roles defaults to {Employee} when
// omitted; an account never ends up with an empty role set.
func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if input.Name == "" || input.Email == "" || len(input.Password) < minPasswordLen {
		return nil, domain.ErrValidation
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleEmployee}
	}
	if err := validateRoleNames(roles); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.accounts.Create(ctx, &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		Contact:      input.Contact,
		Roles:        roles,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// Update applies a partial update to an account. A provided password is
// re-hashed; a provided role set must be non-empty and drawn from the closed
// enumeration.
func (s *AccountService) Update(ctx context.Context, id string, input ports.UpdateAccountInput) (*domain.Account, error) {
	if input.Roles != nil {
		if len(input.Roles) == 0 {
			return nil, domain.ErrValidation
		}
		if err := validateRoleNames(input.Roles); err != nil {
			return nil, err
		}
	}

	patch := ports.AccountPatch{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Roles:   input.Roles,
	}
	if input.Password != nil {
		if len(*input.Password) < minPasswordLen {
			return nil, domain.ErrValidation
		}
		hash, err := s.hasher.Hash(ctx, *input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.accounts.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Msg("account updated")
	return updated, nil
}

func validateRoleNames(roles []string) error {
	for _, r := range roles {
		if !domain.ValidRoleName(r) {
			return domain.ErrValidation
		}
	}
	return nil
}
