package userservice

import (
	"context"

	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
)

// Session is a minted login: the signed token plus the claims it carries.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authorizer answers capability questions about a user. Handlers depend on
// this interface rather than comparing role strings themselves.
type Authorizer interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Service handles account business logic.
type Service interface {
	// SignUp creates the account and its profile, then signs the user in.
	SignUp(ctx context.Context, email, username, password string) (*Session, error)

	// SignIn verifies the password and mints a session token.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// Profile returns the public profile for a user id.
	Profile(ctx context.Context, userID string) (*userdb.Profile, error)
}
