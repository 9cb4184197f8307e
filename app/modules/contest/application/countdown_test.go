package contestservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfest/gallery-api/app/eventbus"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCountdown(t *testing.T, clock *FakeClock, ratings *FakeRatingSource) (*Countdown, *contestdomain.Gate) {
	t.Helper()
	gate := contestdomain.NewGate()
	bus := eventbus.NewChannelEventBus(testLogger())
	t.Cleanup(func() { bus.Close() })
	cd := NewCountdown(NewFakeSettingsDB(), ratings, bus, gate, clock, time.Second, testLogger())
	return cd, gate
}

func TestCountdown_FiresExactlyOnce(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	ratings := &FakeRatingSource{
		ListAllFunc: func(ctx context.Context) ([]contestdomain.RatingEntry, error) {
			return []contestdomain.RatingEntry{
				{ArtworkID: "A", UserID: "u1", Value: 3},
				{ArtworkID: "A", UserID: "u2", Value: 2},
				{ArtworkID: "B", UserID: "u3", Value: 4},
			}, nil
		},
	}
	cd, gate := newTestCountdown(t, clock, ratings)

	cd.SetEndTime(start.Add(2 * time.Second))
	ctx := context.Background()

	cd.Tick(ctx)
	assert.False(t, gate.Closed())
	assert.Equal(t, StateOpen, cd.Status().State)

	clock.Advance(2 * time.Second)
	cd.Tick(ctx)
	require.True(t, gate.Closed())

	st := cd.Status()
	assert.Equal(t, StateEnded, st.State)
	require.NotNil(t, st.Winner)
	assert.Equal(t, "A", st.Winner.ArtworkID)
	assert.Equal(t, 5, st.Winner.TotalScore)

	// Later ticks must not re-resolve.
	clock.Advance(5 * time.Second)
	cd.Tick(ctx)
	cd.Tick(ctx)
	assert.Equal(t, 1, ratings.Calls())
}

func TestCountdown_RemainingNeverNegative(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	cd, _ := newTestCountdown(t, clock, &FakeRatingSource{})

	cd.SetEndTime(start.Add(time.Second))
	clock.Advance(time.Minute)
	cd.Tick(context.Background())

	assert.Equal(t, time.Duration(0), cd.Status().Remaining)
}

func TestCountdown_LoadingState(t *testing.T) {
	clock := NewFakeClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	ratings := &FakeRatingSource{}
	cd, gate := newTestCountdown(t, clock, ratings)

	assert.Equal(t, StateLoading, cd.Status().State)

	// Ticks perform no comparisons until the end time is loaded.
	cd.Tick(context.Background())
	assert.False(t, gate.Closed())
	assert.Zero(t, ratings.Calls())
}

func TestCountdown_ReArmsOnNewFutureEndTime(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	ratings := &FakeRatingSource{
		ListAllFunc: func(ctx context.Context) ([]contestdomain.RatingEntry, error) {
			return []contestdomain.RatingEntry{{ArtworkID: "A", UserID: "u1", Value: 5}}, nil
		},
	}
	cd, gate := newTestCountdown(t, clock, ratings)
	ctx := context.Background()

	cd.SetEndTime(start.Add(time.Second))
	clock.Advance(2 * time.Second)
	cd.Tick(ctx)
	require.True(t, gate.Closed())
	require.Equal(t, StateEnded, cd.Status().State)

	// Admin pushes a later, still-future end time: latch clears, gate opens.
	cd.SetEndTime(clock.Now().Add(time.Hour))
	assert.False(t, gate.Closed())
	st := cd.Status()
	assert.Equal(t, StateOpen, st.State)
	assert.Nil(t, st.Winner)

	// And the clock can close it again at the new deadline.
	clock.Advance(2 * time.Hour)
	cd.Tick(ctx)
	assert.True(t, gate.Closed())
	assert.Equal(t, 2, ratings.Calls())
}

func TestCountdown_PastEndTimeIsNoReArm(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	cd, gate := newTestCountdown(t, clock, &FakeRatingSource{})
	ctx := context.Background()

	cd.SetEndTime(start.Add(time.Second))
	clock.Advance(2 * time.Second)
	cd.Tick(ctx)
	require.True(t, gate.Closed())

	// A different end time that is still in the past keeps the gate shut.
	cd.SetEndTime(start.Add(500 * time.Millisecond))
	assert.True(t, gate.Closed())
}

func TestCountdown_StartFailOpenOnReadError(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	gate := contestdomain.NewGate()
	bus := eventbus.NewChannelEventBus(testLogger())
	t.Cleanup(func() { bus.Close() })

	settings := NewFakeSettingsDB()
	settings.GetEndTimeFunc = func(ctx context.Context) (time.Time, error) {
		return time.Time{}, assert.AnError
	}

	cd := NewCountdown(settings, &FakeRatingSource{}, bus, gate, clock, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cd.Start(ctx))

	// Read failure reports an error state but does not close the contest.
	assert.Equal(t, StateError, cd.Status().State)
	assert.False(t, gate.Closed())
}

func TestCountdown_EndTimeArrivesOverBus(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	gate := contestdomain.NewGate()
	bus := eventbus.NewChannelEventBus(testLogger())
	t.Cleanup(func() { bus.Close() })

	settings := NewFakeSettingsDB()
	cd := NewCountdown(settings, &FakeRatingSource{}, bus, gate, clock, time.Second, testLogger())
	svc := NewContestService(settings, &FakeRatingSource{}, bus, cd, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cd.Start(ctx))

	endTime := start.Add(time.Hour)
	require.NoError(t, svc.UpdateEndTime(ctx, endTime))

	assert.Eventually(t, func() bool {
		st := cd.Status()
		return st.State == StateOpen && st.EndTime.Equal(endTime)
	}, time.Second, 10*time.Millisecond)
}
