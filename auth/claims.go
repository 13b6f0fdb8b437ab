package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload embedded in an issued token: the account identity
// plus the registered subject, issuance, and expiry fields. It exists only
// for the token's lifetime and is never persisted.
type Claims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
}

// AccountID parses the identity carried by the claims.
func (c *Claims) AccountID() (uuid.UUID, error) {
	id := c.UID
	if id == "" {
		id = c.RegisteredClaims.Subject
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}
	return parsed, nil
}

// Expires returns the expiry encoded in the claims, or the zero time when
// absent.
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// Issued returns the issued-at timestamp, or the zero time when absent.
func (c *Claims) Issued() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
