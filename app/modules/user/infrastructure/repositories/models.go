package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an account. The password is stored as a bcrypt hash only.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           string    `bun:"id,pk"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Role         string    `bun:"role,notnull,default:'member'"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Profile is the public face of a user. Created in the same transaction as
// the account so the two can never drift apart.
type Profile struct {
	bun.BaseModel `bun:"table:profiles"`

	UserID   string `bun:"user_id,pk"`
	Username string `bun:"username,notnull,unique"`
}
