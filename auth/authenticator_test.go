package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	created := &auth.Account{ID: uuid.New(), Email: "a@x.com"}

	store.On("CreateAccount", ctx, "a@x.com", mock.AnythingOfType("string")).
		Return(created, nil).Once()

	account, err := authenticator.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)
	assert.Equal(t, "a@x.com", account.Email)

	// The persisted secret must be a verifiable hash, never the plaintext.
	storedHash := store.Calls[0].Arguments.String(2)
	assert.NotEqual(t, "pw123", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw123")))

	store.AssertExpectations(t)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	store.On("CreateAccount", ctx, "a@x.com", mock.AnythingOfType("string")).
		Return(nil, auth.ErrDuplicateAccount).Once()

	account, err := authenticator.Register(ctx, "a@x.com", "pw123")
	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, auth.IsDuplicateAccount(err))

	store.AssertExpectations(t)
}

func TestRegisterStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	store.On("CreateAccount", ctx, "a@x.com", mock.AnythingOfType("string")).
		Return(nil, errors.New("connection refused")).Once()

	_, err := authenticator.Register(ctx, "a@x.com", "pw123")
	require.Error(t, err)
	assert.True(t, auth.IsStoreUnavailable(err))

	store.AssertExpectations(t)
}

func TestRegisterEmptyPassword(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	_, err := authenticator.Register(ctx, "a@x.com", "")
	require.Error(t, err)

	store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	cfg := newTestConfig()
	authenticator := auth.NewAuthenticator(store, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &auth.Account{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: string(hash),
	}

	store.On("FindAccountByEmail", ctx, "a@x.com").Return(account, nil).Once()

	token, err := authenticator.Authenticate(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authenticator.TokenService().Validate(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UID)
	assert.Equal(t, "a@x.com", claims.Email)

	store.AssertExpectations(t)
}

func TestAuthenticateRejectionsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &auth.Account{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: string(hash),
	}

	store.On("FindAccountByEmail", ctx, "missing@x.com").
		Return(nil, auth.ErrAccountNotFound).Once()
	store.On("FindAccountByEmail", ctx, "a@x.com").
		Return(account, nil).Once()

	_, errNoAccount := authenticator.Authenticate(ctx, "missing@x.com", "pw123")
	_, errBadPassword := authenticator.Authenticate(ctx, "a@x.com", "wrong")

	require.Error(t, errNoAccount)
	require.Error(t, errBadPassword)
	assert.True(t, auth.IsInvalidCredentials(errNoAccount))
	assert.True(t, auth.IsInvalidCredentials(errBadPassword))

	// Callers must not be able to tell the two apart by message content.
	assert.Equal(t, errNoAccount.Error(), errBadPassword.Error())
	assert.False(t, auth.IsAccountNotFound(errNoAccount))

	store.AssertExpectations(t)
}

func TestAuthenticateStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)
	authenticator := auth.NewAuthenticator(store, newTestConfig())

	store.On("FindAccountByEmail", ctx, "a@x.com").
		Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	_, err := authenticator.Authenticate(ctx, "a@x.com", "pw123")
	require.Error(t, err)
	assert.True(t, auth.IsStoreUnavailable(err))
	assert.False(t, auth.IsInvalidCredentials(err))

	store.AssertExpectations(t)
}
