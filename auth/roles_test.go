package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRole(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	account := &auth.Account{ID: accountID, Email: "a@x.com"}

	tests := []struct {
		name     string
		role     auth.RoleName
		member   bool
		expected bool
	}{
		{name: "direct edge grants", role: auth.RoleAdmin, member: true, expected: true},
		{name: "no edge denies", role: auth.RoleAdmin, member: false, expected: false},
		{name: "unknown role is false not error", role: "SUPERVISOR", member: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCredentialStore)
			store.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
			store.On("AccountHasRole", ctx, accountID, tt.role).Return(tt.member, nil).Once()

			authorizer := auth.NewRoleAuthorizer(store)

			ok, err := authorizer.HasRole(ctx, accountID, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)

			store.AssertExpectations(t)
		})
	}
}

func TestHasRoleAccountNotFound(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	store := new(MockCredentialStore)
	store.On("FindAccountByID", ctx, accountID).
		Return(nil, auth.ErrAccountNotFound).Once()

	authorizer := auth.NewRoleAuthorizer(store)

	ok, err := authorizer.HasRole(ctx, accountID, auth.RoleAdmin)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, auth.IsAccountNotFound(err))

	store.AssertExpectations(t)
}

func TestHasRoleStoreFailure(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	account := &auth.Account{ID: accountID, Email: "a@x.com"}

	store := new(MockCredentialStore)
	store.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	store.On("AccountHasRole", ctx, accountID, auth.RoleAdmin).
		Return(false, errors.New("disk I/O error")).Once()

	authorizer := auth.NewRoleAuthorizer(store)

	ok, err := authorizer.HasRole(ctx, accountID, auth.RoleAdmin)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, auth.IsStoreUnavailable(err))

	store.AssertExpectations(t)
}
