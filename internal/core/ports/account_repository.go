package ports

import (
	"context"

	"github.com/medistaff/staffdir/internal/core/domain"
)

// AccountRepository defines the persistence interface for staff accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByContact(ctx context.Context, contact string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, id string, patch AccountPatch) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	CountWithRole(ctx context.Context, role string) (int64, error)
}

// AccountPatch is a partial update; nil fields are left unchanged.
type AccountPatch struct {
	Name         *string
	Email        *string
	Contact      *string
	Roles        []string
	PasswordHash *string
}
