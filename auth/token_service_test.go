package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() *auth.Account {
	return &auth.Account{
		ID:    uuid.New(),
		Email: "a@x.com",
	}
}

func TestTokenServiceRoundTrip(t *testing.T) {
	cfg := newTestConfig()
	ts := auth.NewTokenService(cfg, nil)
	account := testAccount()

	token, err := ts.Generate(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, account.ID.String(), claims.UID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.ID.String(), claims.RegisteredClaims.Subject)
	assert.Equal(t, cfg.Issuer, claims.RegisteredClaims.Issuer)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)

	assert.False(t, claims.Issued().IsZero())
	assert.WithinDuration(t, claims.Issued().Add(cfg.TokenTTL), claims.Expires(), time.Second)
}

func TestTokenServiceExpired(t *testing.T) {
	cfg := newTestConfig()
	ts := auth.NewTokenService(cfg, nil)
	account := testAccount()

	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UID:   account.ID.String(),
		Email: account.Email,
	}

	token, err := ts.SignClaims(claims)
	require.NoError(t, err)

	_, err = ts.Validate(token)
	require.Error(t, err)
	assert.True(t, auth.IsTokenExpired(err))
	assert.False(t, auth.IsTokenMalformed(err))
}

func TestTokenServiceTampered(t *testing.T) {
	ts := auth.NewTokenService(newTestConfig(), nil)

	token, err := ts.Generate(testAccount())
	require.NoError(t, err)

	// Flip a byte in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[3] == 'A' {
		payload[3] = 'B'
	} else {
		payload[3] = 'A'
	}
	tampered := strings.Join([]string{parts[0], string(payload), parts[2]}, ".")

	_, err = ts.Validate(tampered)
	require.Error(t, err)
	assert.True(t, auth.IsTokenMalformed(err))
}

func TestTokenServiceWrongKey(t *testing.T) {
	cfg := newTestConfig()
	issuer := auth.NewTokenService(cfg, nil)

	otherCfg := newTestConfig()
	otherCfg.SigningKey = []byte("a-completely-different-signing-key")
	verifier := auth.NewTokenService(otherCfg, nil)

	token, err := issuer.Generate(testAccount())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.True(t, auth.IsTokenMalformed(err))
}

func TestTokenServiceAudience(t *testing.T) {
	cfg := newTestConfig()
	cfg.Audience = []string{"airline-api"}
	ts := auth.NewTokenService(cfg, nil)

	token, err := ts.Generate(testAccount())
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.ClaimStrings{"airline-api"}, claims.RegisteredClaims.Audience)

	otherCfg := newTestConfig()
	otherCfg.Audience = []string{"other-api"}
	verifier := auth.NewTokenService(otherCfg, nil)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.True(t, auth.IsTokenMalformed(err))
}

func TestTokenServiceGarbageInput(t *testing.T) {
	ts := auth.NewTokenService(newTestConfig(), nil)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "definitely-not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Validate(tt.token)
			require.Error(t, err)
			assert.True(t, auth.IsTokenMalformed(err))
		})
	}
}

func TestTokenServiceNilInputs(t *testing.T) {
	ts := auth.NewTokenService(newTestConfig(), nil)

	_, err := ts.Generate(nil)
	assert.Error(t, err)

	_, err = ts.SignClaims(nil)
	assert.Error(t, err)
}

func TestClaimsAccountIDMalformedSubject(t *testing.T) {
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
	}

	_, err := claims.AccountID()
	require.Error(t, err)
	assert.True(t, auth.IsTokenMalformed(err))
}

func TestConfigValidate(t *testing.T) {
	cfg := &auth.Config{}
	assert.Error(t, cfg.Validate())

	cfg.SigningKey = []byte("key")
	assert.NoError(t, cfg.Validate())

	cfg.TokenTTL = -time.Hour
	assert.Error(t, cfg.Validate())
}
