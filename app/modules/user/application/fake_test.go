package userservice

import (
	"context"
	"sync"

	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
)

// FakeUserDB is an in-memory userdb.UserDB with real uniqueness checks on
// email and username.
type FakeUserDB struct {
	mu       sync.Mutex
	users    map[string]userdb.User
	profiles map[string]userdb.Profile
	trace    []string

	CreateErr error
}

func NewFakeUserDB() *FakeUserDB {
	return &FakeUserDB{
		users:    make(map[string]userdb.User),
		profiles: make(map[string]userdb.Profile),
	}
}

func (f *FakeUserDB) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserDB) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserDB) CreateWithProfile(ctx context.Context, user *userdb.User, profile *userdb.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateWithProfile")
	if f.CreateErr != nil {
		return f.CreateErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return userdb.ErrDuplicate
		}
	}
	for _, existing := range f.profiles {
		if existing.Username == profile.Username {
			return userdb.ErrDuplicate
		}
	}
	f.users[user.ID] = *user
	f.profiles[profile.UserID] = *profile
	return nil
}

func (f *FakeUserDB) GetByID(ctx context.Context, userID string) (*userdb.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetByID")
	user, ok := f.users[userID]
	if !ok {
		return nil, userdb.ErrNotFound
	}
	return &user, nil
}

func (f *FakeUserDB) GetByEmail(ctx context.Context, email string) (*userdb.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetByEmail")
	for _, user := range f.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserDB) GetProfile(ctx context.Context, userID string) (*userdb.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetProfile")
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, userdb.ErrNotFound
	}
	return &profile, nil
}
