package contestservice

import (
	"context"
	"sync"
	"time"

	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	contestdb "github.com/artfest/gallery-api/app/modules/contest/infrastructure/repositories"
)

// ------------------------
// Fake Clock
// ------------------------

type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ------------------------
// Fake Settings DB
// ------------------------

// FakeSettingsDB provides a programmable stub for the contestdb.SettingsDB
// interface.
type FakeSettingsDB struct {
	mu    sync.Mutex
	trace []string

	GetEndTimeFunc func(ctx context.Context) (time.Time, error)
	SetEndTimeFunc func(ctx context.Context, endTime time.Time) error
}

func NewFakeSettingsDB() *FakeSettingsDB {
	return &FakeSettingsDB{trace: []string{}}
}

func (f *FakeSettingsDB) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of store methods called.
func (f *FakeSettingsDB) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSettingsDB) GetEndTime(ctx context.Context) (time.Time, error) {
	f.record("GetEndTime")
	if f.GetEndTimeFunc != nil {
		return f.GetEndTimeFunc(ctx)
	}
	return time.Time{}, contestdb.ErrNotFound
}

func (f *FakeSettingsDB) SetEndTime(ctx context.Context, endTime time.Time) error {
	f.record("SetEndTime")
	if f.SetEndTimeFunc != nil {
		return f.SetEndTimeFunc(ctx, endTime)
	}
	return nil
}

// ------------------------
// Fake Rating Source
// ------------------------

type FakeRatingSource struct {
	mu    sync.Mutex
	calls int

	ListAllFunc func(ctx context.Context) ([]contestdomain.RatingEntry, error)
}

func (f *FakeRatingSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeRatingSource) ListAll(ctx context.Context) ([]contestdomain.RatingEntry, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}
