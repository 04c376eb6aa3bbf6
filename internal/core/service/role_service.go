package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
)

// RoleService implements the admin-only role catalog operations. The role
// name enumeration is closed; the catalog only adds descriptions on top.
type RoleService struct {
	roles  ports.RoleRepository
	cache  ports.RoleCache
	logger zerolog.Logger
}

// NewRoleService creates a RoleService. cache may be nil, in which case every
// List hits the repository.
func NewRoleService(roles ports.RoleRepository, cache ports.RoleCache, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, cache: cache, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	if !domain.ValidRoleName(input.Name) {
		return nil, domain.ErrValidation
	}

	if _, err := s.roles.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrRoleExists
	} else if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("lookup role: %w", err)
	}

	created, err := s.roles.Create(ctx, &domain.Role{Name: input.Name, Description: input.Description})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

// List serves the catalog through the cache when one is configured. Cache
// staleness is bounded by the cache TTL, the same tradeoff as role claims
// snapshotted in tokens.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	if s.cache != nil {
		if roles, ok := s.cache.Get(ctx); ok {
			return roles, nil
		}
	}

	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, roles)
	}
	return roles, nil
}

func (s *RoleService) Update(ctx context.Context, id string, input ports.UpdateRoleInput) (*domain.Role, error) {
	if input.Name != nil && !domain.ValidRoleName(*input.Name) {
		return nil, domain.ErrValidation
	}

	updated, err := s.roles.Update(ctx, id, ports.RolePatch{Name: input.Name, Description: input.Description})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Str("role_id", id).Msg("role updated")
	return updated, nil
}
