package auth

import (
	"context"

	"github.com/uptrace/bun"
)

// CreateSchema creates the auth tables when they do not exist yet. Role
// vocabulary seeding lives in RepositoryManager.EnsureRole.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Account)(nil),
		(*Role)(nil),
		(*AccountRole)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return wrapStoreError(err, "failed to create auth schema")
		}
	}

	return nil
}
