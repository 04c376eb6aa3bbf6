package ports

import (
	"context"

	"github.com/medistaff/staffdir/internal/core/domain"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, *domain.Account, error)
}

// PasswordHasher hashes and verifies passwords. Both operations are
// deliberately slow; implementations bound their concurrency so a burst of
// login attempts cannot monopolize the process.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) (bool, error)
}
