package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RoleName names a role. The vocabulary is seed data; the core only reads
// membership, never creates or deletes roles.
type RoleName = string

const (
	// RoleUser is the default role every registered account may hold.
	RoleUser RoleName = "USER"
	// RoleAdmin grants access to catalog administration.
	RoleAdmin RoleName = "ADMIN"
)

// Account is the stored credential record. The core never mutates an account
// after creation; deletion happens through an external administrative action,
// which is exactly what SessionValidator detects.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:acc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Summary strips the account down to its outward shape.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Email: a.Email}
}

// Role is a named role seed record.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:rol"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          RoleName  `bun:"name,notnull,unique" json:"name,omitempty"`
}

// AccountRole is the membership edge between an account and a role.
type AccountRole struct {
	bun.BaseModel `bun:"table:account_roles,alias:acr"`
	AccountID     uuid.UUID `bun:"account_id,pk,type:uuid" json:"account_id,omitempty"`
	Account       *Account  `bun:"rel:belongs-to,join:account_id=id" json:"account,omitempty"`
	RoleID        uuid.UUID `bun:"role_id,pk,type:uuid" json:"role_id,omitempty"`
	Role          *Role     `bun:"rel:belongs-to,join:role_id=id" json:"role,omitempty"`
}
