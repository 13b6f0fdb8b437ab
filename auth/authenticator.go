package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Authenticator orchestrates sign-up and sign-in: it owns the hashing and
// token-minting flow and reaches persistence only through CredentialStore.
type Authenticator struct {
	store        CredentialStore
	hasher       PasswordAuthenticator
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator wires an Authenticator from the store and the process
// configuration. cfg must have passed Validate.
func NewAuthenticator(store CredentialStore, cfg *Config) *Authenticator {
	return &Authenticator{
		store:        store,
		hasher:       NewBcryptHasher(cfg.bcryptCost()),
		tokenService: NewTokenService(cfg, defLogger{}),
		logger:       defLogger{},
	}
}

func (s *Authenticator) WithLogger(logger Logger) *Authenticator {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithTokenService replaces the default token service.
func (s *Authenticator) WithTokenService(ts TokenService) *Authenticator {
	if ts != nil {
		s.tokenService = ts
	}
	return s
}

// WithPasswordAuthenticator replaces the default bcrypt hasher.
func (s *Authenticator) WithPasswordAuthenticator(hasher PasswordAuthenticator) *Authenticator {
	if hasher != nil {
		s.hasher = hasher
	}
	return s
}

// TokenService returns the token service this Authenticator mints with.
func (s *Authenticator) TokenService() TokenService {
	return s.tokenService
}

// Register hashes the plaintext and persists a new account. A uniqueness
// violation surfaces as ErrDuplicateAccount; any other store failure as
// ErrStoreUnavailable. The plaintext is never stored or logged.
func (s *Authenticator) Register(ctx context.Context, email, password string) (*Account, error) {
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account, err := s.store.CreateAccount(ctx, email, hash)
	if err != nil {
		if IsDuplicateAccount(err) {
			s.logger.Debug("registration rejected, email taken", "email", email)
			return nil, err
		}
		return nil, normalizeStoreError(err)
	}

	return account, nil
}

// Authenticate verifies the password against the stored hash for the account
// with the given email and mints a bearer token carrying identity. Both
// an unknown email and a password mismatch return ErrInvalidCredentials; the
// distinction survives only in a debug log line, never in the returned error.
func (s *Authenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := s.store.FindAccountByEmail(ctx, email)
	if err != nil {
		if IsAccountNotFound(err) {
			s.logger.Debug("authentication failed, no account for identifier", "email", email)
			return "", ErrInvalidCredentials
		}
		return "", normalizeStoreError(err)
	}

	if err := s.hasher.ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		s.logger.Debug("authentication failed, password mismatch", "account", account.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(account)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return "", err
	}

	return token, nil
}

// normalizeStoreError keeps taxonomy errors intact and folds anything else
// into ErrStoreUnavailable so store-specific shapes never leak upward.
func normalizeStoreError(err error) error {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode != "" {
		return err
	}
	return goerrors.Wrap(err, ErrStoreUnavailable.Category, ErrStoreUnavailable.Message).
		WithTextCode(ErrStoreUnavailable.TextCode)
}
