// Package token issues and validates the signed bearer tokens that carry
// a session's identity claims. Tokens are HS256-signed and time-boxed;
// there is no server-side revocation, expiry is the only terminator.
//
// Issuer and audience are deliberately not validated, matching the
// deployed clients. Hardening this would reject tokens those clients
// currently accept.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the session claim set embedded in every issued token.
type Claims struct {
	Email      string `json:"email"`
	UserID     int    `json:"uid"`
	RoleName   string `json:"role"`
	EmployeeID *int   `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// Role resolves the ordinal role from the claim's role name. Unknown
// names degrade to the lowest tier.
func (c *Claims) Role() domain.Role {
	if r, ok := domain.ParseRole(c.RoleName); ok {
		return r
	}
	return domain.RoleEmployee
}

// Issue signs a token for user, valid for ttl from now. It returns the
// signed token and its expiry instant.
func Issue(user *domain.User, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	expires := now.Add(ttl)

	claims := &Claims{
		Email:      user.Email,
		UserID:     user.ID,
		RoleName:   user.Role.String(),
		EmployeeID: user.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Parse verifies signature and expiry and returns the embedded claims.
// A token is expired at exactly issuance+ttl: validity is an exclusive
// window with zero leeway.
func Parse(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
