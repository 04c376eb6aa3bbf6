package ports

import (
	"context"

	"github.com/medistaff/staffdir/internal/core/domain"
)

type CreateAccountInput struct {
	Name     string
	Email    string
	Contact  string
	Password string
	Roles    []string
}

// UpdateAccountInput is a partial update; nil fields are left unchanged.
// A non-nil Password is re-hashed before persisting.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Contact  *string
	Password *string
	Roles    []string
}

// AccountService implements the admin-only account provisioning operations.
type AccountService interface {
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error)
}

type CreateRoleInput struct {
	Name        string
	Description string
}

type UpdateRoleInput struct {
	Name        *string
	Description *string
}

// RoleService implements the admin-only role catalog operations.
type RoleService interface {
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, id string, input UpdateRoleInput) (*domain.Role, error)
}
