package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
	"github.com/artfest/gallery-api/pkg/jwt"
)

const minPasswordLength = 8

// ErrBadCredentials covers both unknown email and wrong password so the
// response does not reveal which one failed.
var ErrBadCredentials = errors.New("invalid email or password")

// UserService implements Service and Authorizer.
type UserService struct {
	userDB      userdb.UserDB
	tokens      jwt.Service
	adminEmails map[string]bool
	logger      *slog.Logger
}

func NewUserService(
	userDB userdb.UserDB,
	tokens jwt.Service,
	adminEmails []string,
	logger *slog.Logger,
) *UserService {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[normalizeEmail(email)] = true
	}
	return &UserService{
		userDB:      userDB,
		tokens:      tokens,
		adminEmails: admins,
		logger:      logger,
	}
}

func (s *UserService) SignUp(ctx context.Context, email, username, password string) (*Session, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %w", shared.ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("username is empty: %w", shared.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password shorter than %d characters: %w", minPasswordLength, shared.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := jwt.RoleMember
	if s.adminEmails[email] {
		role = jwt.RoleAdmin
	}

	user := &userdb.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		CreatedAt:    time.Now(),
	}
	profile := &userdb.Profile{
		UserID:   user.ID,
		Username: username,
	}

	if err := s.userDB.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, userdb.ErrDuplicate) {
			return nil, fmt.Errorf("email or username taken: %w", shared.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User signed up",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)
	return s.mintSession(user, username)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userDB.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	profile, err := s.userDB.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return s.mintSession(user, profile.Username)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*userdb.Profile, error) {
	profile, err := s.userDB.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

// IsAdmin checks the stored role, not the token claim, so a demotion takes
// effect without waiting for the token to expire.
func (s *UserService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.userDB.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user.Role == string(jwt.RoleAdmin), nil
}

func (s *UserService) mintSession(user *userdb.User, username string) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.ID, username, jwt.Role(user.Role), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}
	return &Session{
		Token:    token,
		UserID:   user.ID,
		Username: username,
		Role:     user.Role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
