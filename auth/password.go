package auth

import (
	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with a configurable work factor.
type BcryptHasher struct {
	cost int
}

var _ PasswordAuthenticator = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost. A cost outside
// bcrypt's supported range falls back to the package default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = passwordHashCost()
	}
	return &BcryptHasher{cost: cost}
}

// HashPassword generates a salted hash of password. The salt varies per call,
// so hashing the same password twice yields different hashes that both
// verify.
func (h *BcryptHasher) HashPassword(password string) (string, error) {
	if password == "" {
		return "", goerrors.New("password must not be empty", goerrors.CategoryValidation).
			WithCode(goerrors.CodeBadRequest).
			WithTextCode("EMPTY_PASSWORD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}
	return string(hash), nil
}

// ComparePasswordAndHash verifies password against hash without leaking
// timing proportional to matching prefix bytes. Any failure, including a
// malformed hash, surfaces as ErrInvalidCredentials.
func (h *BcryptHasher) ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
