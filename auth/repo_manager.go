package auth

import (
	"context"
	"database/sql"
	"errors"
	"log"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryManager exposes the auth repositories and transaction scope.
type RepositoryManager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Accounts() Accounts
	Roles() repository.Repository[*Role]

	EnsureRole(ctx context.Context, name RoleName) (*Role, error)
}

func NewRolesRepository(db *bun.DB) repository.Repository[*Role] {
	handlers := repository.ModelHandlers[*Role]{
		NewRecord: func() *Role {
			return &Role{}
		},
		GetID: func(record *Role) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return record.ID
		},
		SetID: func(record *Role, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
	}
	return repository.NewRepository(db, handlers)
}

type mngr struct {
	db       *bun.DB
	accounts Accounts
	roles    repository.Repository[*Role]
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	db.RegisterModel((*AccountRole)(nil))

	return &mngr{
		db:       db,
		accounts: NewAccountsRepository(db),
		roles:    NewRolesRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.accounts == nil {
		return errors.New("repository accounts should be initialized")
	}

	if m.roles == nil {
		return errors.New("repository roles should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Accounts() Accounts {
	return m.accounts
}

func (m mngr) Roles() repository.Repository[*Role] {
	return m.roles
}

// EnsureRole creates the named role if it is not seeded yet.
func (m mngr) EnsureRole(ctx context.Context, name RoleName) (*Role, error) {
	role := &Role{}
	err := m.db.NewSelect().Model(role).
		Where("rol.name = ?", name).
		Limit(1).
		Scan(ctx)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, wrapStoreError(err, "failed to resolve role")
	}

	role = &Role{ID: uuid.New(), Name: name}
	if _, err := m.db.NewInsert().Model(role).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, wrapStoreError(err, "failed to seed role")
	}
	return role, nil
}
