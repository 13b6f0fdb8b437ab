package auth

import (
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// DefaultTokenTTL matches the source system's fixed one-day token lifetime.
const DefaultTokenTTL = 24 * time.Hour

// Config is the process-wide configuration for the auth core. It is built
// once at startup and passed by reference into constructors; there is no
// ambient global signing key.
type Config struct {
	// SigningKey is the symmetric key used to sign and verify tokens.
	// Required; Validate fails without it.
	SigningKey []byte
	// TokenTTL is the token lifetime. Zero means DefaultTokenTTL.
	TokenTTL time.Duration
	// BcryptCost is the password hashing work factor. Zero means the
	// package default.
	BcryptCost int
	// Issuer and Audience are embedded in issued tokens and enforced on
	// validation when set.
	Issuer   string
	Audience []string
}

// Validate reports whether the configuration is usable. A missing signing key
// is a fatal configuration error, not a runtime error path.
func (c *Config) Validate() error {
	if c == nil || len(c.SigningKey) == 0 {
		return goerrors.New("auth signing key is required", goerrors.CategoryOperation).
			WithTextCode("SIGNING_KEY_MISSING")
	}
	if c.TokenTTL < 0 {
		return goerrors.New("token TTL must be non-negative", goerrors.CategoryOperation).
			WithTextCode("TOKEN_TTL_INVALID")
	}
	return nil
}

func (c *Config) tokenTTL() time.Duration {
	if c.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return c.TokenTTL
}

func (c *Config) bcryptCost() int {
	if c.BcryptCost <= 0 {
		return passwordHashCost()
	}
	return c.BcryptCost
}
