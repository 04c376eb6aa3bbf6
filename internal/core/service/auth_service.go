package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
	"github.com/medistaff/staffdir/internal/core/token"
)

const minPasswordLen = 6

// AuthService verifies credentials and issues access tokens.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	codec    *token.Codec
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, hasher ports.PasswordHasher, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, codec: codec, logger: logger}
}

// Login checks the identifier/password pair and returns a signed token plus
// the matched account. An identifier containing '@' is looked up as an
// email, anything else as a contact number; exactly one strategy is tried.
// Unknown identifier and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
	if identifier == "" || len(password) < minPasswordLen {
		return "", nil, domain.ErrValidation
	}

	var (
		account *domain.Account
		err     error
	)
	if domain.IdentifierIsEmail(identifier) {
		account, err = s.accounts.FindByEmail(ctx, identifier)
	} else {
		account, err = s.accounts.FindByContact(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup account: %w", err)
	}

	ok, err := s.hasher.Compare(ctx, account.PasswordHash, password)
	if err != nil {
		return "", nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(account)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("login succeeded")
	return signed, account, nil
}
