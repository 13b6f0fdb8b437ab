package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenServiceImpl signs and validates HS256 bearer tokens.
type TokenServiceImpl struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	audience   jwt.ClaimStrings
	logger     Logger
	now        func() time.Time
}

var _ TokenService = (*TokenServiceImpl)(nil)

// NewTokenService creates a TokenService from cfg. cfg must have passed
// Validate; the signing key is read once here and never mutated.
func NewTokenService(cfg *Config, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey: cfg.SigningKey,
		ttl:        cfg.tokenTTL(),
		issuer:     cfg.Issuer,
		audience:   append(jwt.ClaimStrings(nil), cfg.Audience...),
		logger:     logger,
		now:        time.Now,
	}
}

// Generate mints a token carrying the account's identity and email.
func (ts *TokenServiceImpl) Generate(account *Account) (string, error) {
	if account == nil {
		return "", goerrors.New("account must not be nil", goerrors.CategoryInternal)
	}

	now := ts.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   account.ID.String(),
			Audience:  ts.audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		UID:   account.ID.String(),
		Email: account.Email,
	}

	return ts.SignClaims(claims)
}

// SignClaims signs arbitrary claims using the configured signing key.
func (ts *TokenServiceImpl) SignClaims(claims *Claims) (string, error) {
	if claims == nil {
		return "", goerrors.New("claims must not be nil", goerrors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string, returning the original claims.
// A token past its expiry fails with ErrTokenExpired; tampering, a wrong key,
// or an unparseable payload fail with ErrTokenMalformed.
func (ts *TokenServiceImpl) Validate(tokenString string) (*Claims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 3)
	parserOptions = append(parserOptions, jwt.WithTimeFunc(ts.now))
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validation encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		if goerrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("token validation could not decode claims")
	return nil, ErrTokenMalformed
}
