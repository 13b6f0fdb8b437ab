package auth

import (
	goerrors "github.com/goliatone/go-errors"
)

// ErrDuplicateAccount is returned when a registration loses the race at the
// store's email uniqueness constraint.
var ErrDuplicateAccount = goerrors.New("an account with this email already exists", goerrors.CategoryConflict).
	WithCode(goerrors.CodeConflict).
	WithTextCode("DUPLICATE_ACCOUNT")

// ErrAccountNotFound is returned when an identity does not resolve to an
// account. Authenticate never surfaces it to callers; see ErrInvalidCredentials.
var ErrAccountNotFound = goerrors.New("account not found", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound).
	WithTextCode("ACCOUNT_NOT_FOUND")

// ErrInvalidCredentials is the single rejection Authenticate produces for both
// an unknown email and a password mismatch, so callers cannot tell the two
// apart.
var ErrInvalidCredentials = goerrors.New("invalid email or password", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrTokenMalformed covers tampered, unparseable, or wrongly signed tokens.
var ErrTokenMalformed = goerrors.New("token is malformed or has an invalid signature", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrTokenExpired is returned when a token's expiry has elapsed.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrAccountGone is returned for a cryptographically valid, unexpired token
// whose subject account no longer exists.
var ErrAccountGone = goerrors.New("account for this session no longer exists", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("ACCOUNT_GONE")

// ErrStoreUnavailable wraps any persistence failure not otherwise classified.
var ErrStoreUnavailable = goerrors.New("credential store unavailable", goerrors.CategoryInternal).
	WithCode(goerrors.CodeInternal).
	WithTextCode("STORE_UNAVAILABLE")

// IsDuplicateAccount reports whether err is a uniqueness-violation rejection.
func IsDuplicateAccount(err error) bool {
	return hasTextCode(err, ErrDuplicateAccount.TextCode)
}

// IsAccountNotFound reports whether err means the identity did not resolve.
func IsAccountNotFound(err error) bool {
	return hasTextCode(err, ErrAccountNotFound.TextCode)
}

// IsInvalidCredentials reports whether err is the authentication rejection.
func IsInvalidCredentials(err error) bool {
	return hasTextCode(err, ErrInvalidCredentials.TextCode)
}

// IsTokenExpired reports whether err means the token outlived its expiry.
func IsTokenExpired(err error) bool {
	return hasTextCode(err, ErrTokenExpired.TextCode)
}

// IsTokenMalformed reports whether err means the token failed signature or
// parse checks.
func IsTokenMalformed(err error) bool {
	return hasTextCode(err, ErrTokenMalformed.TextCode)
}

// IsAccountGone reports whether err means a session's subject was deleted.
func IsAccountGone(err error) bool {
	return hasTextCode(err, ErrAccountGone.TextCode)
}

// IsStoreUnavailable reports whether err wraps a persistence failure.
func IsStoreUnavailable(err error) bool {
	return hasTextCode(err, ErrStoreUnavailable.TextCode)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == code
	}
	return false
}
