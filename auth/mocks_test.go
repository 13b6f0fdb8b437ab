package auth_test

import (
	"context"
	"time"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) CreateAccount(ctx context.Context, email, passwordHash string) (*auth.Account, error) {
	args := m.Called(ctx, email, passwordHash)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

func (m *MockCredentialStore) FindAccountByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	args := m.Called(ctx, id)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

func (m *MockCredentialStore) FindAccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

func (m *MockCredentialStore) AccountHasRole(ctx context.Context, id uuid.UUID, role auth.RoleName) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

var _ auth.CredentialStore = (*MockCredentialStore)(nil)

func newTestConfig() *auth.Config {
	return &auth.Config{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
		Issuer:     "airline-test",
	}
}
