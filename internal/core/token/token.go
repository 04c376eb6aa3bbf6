// Package token is the single place access tokens are minted and verified.
// Tokens are HS256 JWTs; claims are a snapshot of the account at issuance
// time and are never refreshed from the database during validation, so role
// changes only take effect on re-login, bounded by the fixed 12 hour expiry.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medistaff/staffdir/internal/core/domain"
)

// TTL is the fixed token lifetime. Not configurable per call.
const TTL = 12 * time.Hour

// Claims is the verified payload of an access token.
type Claims struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
	Name   string   `json:"name"`
	jwt.RegisteredClaims
}

// Satisfies reports whether the claims grant the required role. Admin
// satisfies every requirement; no other role implies another.
func (c *Claims) Satisfies(required string) bool {
	for _, r := range c.Roles {
		if r == domain.RoleAdmin || r == required {
			return true
		}
	}
	return false
}

// Codec signs and verifies access tokens with a shared server secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Issue mints a signed token for the account. The claim set is covered by
// the signature in full, so any change to subject, roles or expiry
// invalidates the token.
func (c *Codec) Issue(account *domain.Account) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("issue token: signing secret not configured")
	}

	now := c.now().UTC()
	claims := &Claims{
		UserID: account.ID,
		Roles:  account.Roles,
		Name:   account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of a raw token and returns its
// claims. Malformed payloads, signature mismatches and expired tokens all
// collapse to domain.ErrInvalidToken; the distinction is never surfaced.
func (c *Codec) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
