package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
)

// stubHasher runs bcrypt inline at minimum cost; tests have no worker pool.
type stubHasher struct{}

func (stubHasher) Hash(_ context.Context, password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}

func (stubHasher) Compare(_ context.Context, hash, password string) (bool, error) {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by ID
	nextID   int
	lookups  int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Roles = append([]string(nil), a.Roles...)
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.lookups++
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByContact(_ context.Context, contact string) (*domain.Account, error) {
	r.lookups++
	for _, a := range r.accounts {
		if a.Contact == contact {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	clone := cloneAccount(account)
	clone.ID = fmt.Sprintf("acc-%d", r.nextID)
	r.accounts[clone.ID] = clone
	return cloneAccount(clone), nil
}

func (r *stubAccountRepo) Update(_ context.Context, id string, patch ports.AccountPatch) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Email != nil {
		a.Email = *patch.Email
	}
	if patch.Contact != nil {
		a.Contact = *patch.Contact
	}
	if patch.Roles != nil {
		a.Roles = append([]string(nil), patch.Roles...)
	}
	if patch.PasswordHash != nil {
		a.PasswordHash = *patch.PasswordHash
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *cloneAccount(a))
	}
	return out, nil
}

func (r *stubAccountRepo) CountWithRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.HasRole(role) {
			n++
		}
	}
	return n, nil
}

type stubRoleRepo struct {
	roles  map[string]*domain.Role // keyed by ID
	nextID int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleExists
		}
	}
	r.nextID++
	clone := *role
	clone.ID = fmt.Sprintf("role-%d", r.nextID)
	r.roles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, id string, patch ports.RolePatch) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	if patch.Name != nil {
		role.Name = *patch.Name
	}
	if patch.Description != nil {
		role.Description = *patch.Description
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

type stubRoleCache struct {
	roles         []domain.Role
	cached        bool
	hits, misses  int
	invalidations int
}

func (c *stubRoleCache) Get(context.Context) ([]domain.Role, bool) {
	if !c.cached {
		c.misses++
		return nil, false
	}
	c.hits++
	return c.roles, true
}

func (c *stubRoleCache) Set(_ context.Context, roles []domain.Role) {
	c.roles = roles
	c.cached = true
}

func (c *stubRoleCache) Invalidate(context.Context) {
	c.roles = nil
	c.cached = false
	c.invalidations++
}
