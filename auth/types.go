package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// AccountSummary is the outward shape of an account. It never carries the
// password hash.
type AccountSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// CredentialStore is the persistence contract the core requires. Lookups
// return ErrAccountNotFound when the identity does not resolve; every other
// failure is normalized into ErrStoreUnavailable by the implementation.
type CredentialStore interface {
	CreateAccount(ctx context.Context, email, passwordHash string) (*Account, error)
	FindAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	AccountHasRole(ctx context.Context, id uuid.UUID, role RoleName) (bool, error)
}

// PasswordAuthenticator hashes passwords and verifies them against hashes.
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// TokenService signs claims into bearer tokens and validates them back.
type TokenService interface {
	Generate(account *Account) (string, error)
	SignClaims(claims *Claims) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// DefaultLogger returns the stdout fallback logger.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
