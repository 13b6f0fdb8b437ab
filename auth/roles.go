package auth

import (
	"context"

	"github.com/google/uuid"
)

// RoleAuthorizer answers coarse role queries against the store's membership
// edges. There is no hierarchy and no superuser bypass: only a direct edge
// grants a role.
type RoleAuthorizer struct {
	store  CredentialStore
	logger Logger
}

func NewRoleAuthorizer(store CredentialStore) *RoleAuthorizer {
	return &RoleAuthorizer{
		store:  store,
		logger: defLogger{},
	}
}

func (r *RoleAuthorizer) WithLogger(logger Logger) *RoleAuthorizer {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// HasRole reports whether the identity holds the named role. An identity that
// does not resolve fails with ErrAccountNotFound; an unknown role name is
// static-vocabulary drift, not caller input worth a hard failure, and simply
// reports false.
func (r *RoleAuthorizer) HasRole(ctx context.Context, id uuid.UUID, role RoleName) (bool, error) {
	if _, err := r.store.FindAccountByID(ctx, id); err != nil {
		if IsAccountNotFound(err) {
			return false, err
		}
		return false, normalizeStoreError(err)
	}

	ok, err := r.store.AccountHasRole(ctx, id, role)
	if err != nil {
		return false, normalizeStoreError(err)
	}

	return ok, nil
}
