package auth

import (
	"context"
)

// SessionValidator turns a bearer token back into a live account summary.
// Beyond signature and expiry checks it re-confirms the subject still exists,
// so deleting an account lazily revokes every token it still holds.
type SessionValidator struct {
	store     CredentialStore
	validator TokenService
	logger    Logger
}

// NewSessionValidator wires a SessionValidator over the store and a token
// service sharing the signing configuration of the issuer.
func NewSessionValidator(store CredentialStore, validator TokenService) *SessionValidator {
	return &SessionValidator{
		store:     store,
		validator: validator,
		logger:    defLogger{},
	}
}

func (v *SessionValidator) WithLogger(logger Logger) *SessionValidator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// CheckSession validates the token and re-fetches its subject. Token failures
// propagate from the codec (ErrTokenExpired, ErrTokenMalformed); a subject
// that no longer resolves fails with ErrAccountGone. The returned summary
// never includes the password hash.
func (v *SessionValidator) CheckSession(ctx context.Context, token string) (AccountSummary, error) {
	claims, err := v.validator.Validate(token)
	if err != nil {
		return AccountSummary{}, err
	}

	id, err := claims.AccountID()
	if err != nil {
		return AccountSummary{}, err
	}

	account, err := v.store.FindAccountByID(ctx, id)
	if err != nil {
		if IsAccountNotFound(err) {
			v.logger.Debug("session subject no longer exists", "account", id)
			return AccountSummary{}, ErrAccountGone
		}
		return AccountSummary{}, normalizeStoreError(err)
	}

	return account.Summary(), nil
}
