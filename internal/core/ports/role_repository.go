package ports

import (
	"context"

	"github.com/medistaff/staffdir/internal/core/domain"
)

// RoleRepository defines the persistence interface for the role catalog.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, id string, patch RolePatch) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}

// RolePatch is a partial update; nil fields are left unchanged.
type RolePatch struct {
	Name        *string
	Description *string
}

// RoleCache is a best-effort read-through cache over the role catalog.
// Implementations must treat cache failures as misses, never as errors.
type RoleCache interface {
	Get(ctx context.Context) ([]domain.Role, bool)
	Set(ctx context.Context, roles []domain.Role)
	Invalidate(ctx context.Context)
}
