package auth

import (
	"context"
	"database/sql"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Accounts is the Bun-backed credential store. It exposes the generic
// repository surface plus the contract the auth core consumes.
type Accounts interface {
	repository.Repository[*Account]
	CredentialStore

	AssignRole(ctx context.Context, accountID uuid.UUID, role RoleName) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type accounts struct {
	repository.Repository[*Account]
	db *bun.DB
}

var (
	_ Accounts        = (*accounts)(nil)
	_ CredentialStore = (*accounts)(nil)
)

// NewAccountsRepository builds the typed accounts repository over db.
func NewAccountsRepository(db *bun.DB) Accounts {
	repo := repository.NewRepository[*Account](db, repository.ModelHandlers[*Account]{
		NewRecord: func() *Account { return &Account{} },
		GetID: func(a *Account) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Account, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &accounts{
		Repository: repo,
		db:         db,
	}
}

// CreateAccount persists a new account with a deterministic UUID derived from
// the email. Losing the race at the unique email constraint surfaces as
// ErrDuplicateAccount.
func (a *accounts) CreateAccount(ctx context.Context, email, passwordHash string) (*Account, error) {
	account := &Account{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if id, err := hashid.NewUUID(email); err == nil {
		account.ID = id
	} else {
		account.ID = uuid.New()
	}

	if _, err := a.db.NewInsert().Model(account).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAccount
		}
		return nil, wrapStoreError(err, "failed to create account")
	}

	return account, nil
}

// FindAccountByID fetches an account by identity, ErrAccountNotFound when the
// row is gone.
func (a *accounts) FindAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	account := &Account{}
	err := a.db.NewSelect().Model(account).
		Where("acc.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, wrapStoreError(err, "failed to fetch account by id")
	}
	return account, nil
}

// FindAccountByEmail fetches an account by its unique email, case-sensitive
// as stored.
func (a *accounts) FindAccountByEmail(ctx context.Context, email string) (*Account, error) {
	account := &Account{}
	err := a.db.NewSelect().Model(account).
		Where("acc.email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, wrapStoreError(err, "failed to fetch account by email")
	}
	return account, nil
}

// AccountHasRole reports whether a direct membership edge exists. An unknown
// role name simply produces no edge.
func (a *accounts) AccountHasRole(ctx context.Context, id uuid.UUID, role RoleName) (bool, error) {
	exists, err := a.db.NewSelect().
		Model((*AccountRole)(nil)).
		Join("JOIN roles AS rol ON rol.id = acr.role_id").
		Where("acr.account_id = ?", id).
		Where("rol.name = ?", role).
		Exists(ctx)
	if err != nil {
		return false, wrapStoreError(err, "failed to check role membership")
	}
	return exists, nil
}

// AssignRole creates the membership edge between an account and a seeded
// role. Assigning an unknown role name is a hard error here, unlike reads.
func (a *accounts) AssignRole(ctx context.Context, accountID uuid.UUID, role RoleName) error {
	r := &Role{}
	err := a.db.NewSelect().Model(r).
		Where("rol.name = ?", role).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return goerrors.New("role does not exist", goerrors.CategoryNotFound).
				WithCode(goerrors.CodeNotFound).
				WithTextCode("ROLE_NOT_FOUND").
				WithMetadata(map[string]any{"role": role})
		}
		return wrapStoreError(err, "failed to resolve role")
	}

	edge := &AccountRole{AccountID: accountID, RoleID: r.ID}
	if _, err := a.db.NewInsert().Model(edge).
		On("CONFLICT DO NOTHING").
		Exec(ctx); err != nil {
		return wrapStoreError(err, "failed to assign role")
	}
	return nil
}

// DeleteAccount removes an account and its membership edges. This is the
// external administrative action that lazily revokes outstanding tokens.
func (a *accounts) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*AccountRole)(nil)).
			Where("account_id = ?", id).
			Exec(ctx); err != nil {
			return wrapStoreError(err, "failed to delete role edges")
		}
		if _, err := tx.NewDelete().Model((*Account)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return wrapStoreError(err, "failed to delete account")
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func wrapStoreError(err error, msg string) error {
	return goerrors.Wrap(err, ErrStoreUnavailable.Category, msg).
		WithTextCode(ErrStoreUnavailable.TextCode)
}
