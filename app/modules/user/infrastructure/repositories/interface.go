package userdb

import "context"

// UserDB is the store contract for accounts and their profiles.
type UserDB interface {
	// CreateWithProfile stores the account and its profile in one
	// transaction. Returns ErrDuplicate when the email or username is taken.
	CreateWithProfile(ctx context.Context, user *User, profile *Profile) error

	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}
