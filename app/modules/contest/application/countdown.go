package contestservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/artfest/gallery-api/app/events"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	contestdb "github.com/artfest/gallery-api/app/modules/contest/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

// Countdown owns the contest clock. It ticks at a fixed cadence, latches the
// end-of-contest transition once per distinct end-time value, closes the gate
// and resolves the winner on that transition. A newer end time, delivered
// either by the local admin handler or over the bus from another instance,
// re-arms the latch and reopens the gate when it lies in the future.
type Countdown struct {
	settings contestdb.SettingsDB
	ratings  RatingSource
	bus      shared.EventBus
	gate     *contestdomain.Gate
	clock    Clock
	logger   *slog.Logger
	interval time.Duration

	mu         sync.Mutex
	endTime    time.Time
	loaded     bool
	loadErr    error
	latchedFor time.Time
	winner     *contestdomain.WinnerResult

	cancelSub shared.CancelFunc
}

func NewCountdown(
	settings contestdb.SettingsDB,
	ratings RatingSource,
	bus shared.EventBus,
	gate *contestdomain.Gate,
	clock Clock,
	interval time.Duration,
	logger *slog.Logger,
) *Countdown {
	return &Countdown{
		settings: settings,
		ratings:  ratings,
		bus:      bus,
		gate:     gate,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Start loads the end time, subscribes to settings updates and spawns the
// tick loop. The loop, the ticker and the subscription are all torn down when
// ctx is canceled.
func (c *Countdown) Start(ctx context.Context) error {
	endTime, err := c.settings.GetEndTime(ctx)
	switch {
	case err == nil:
		c.SetEndTime(endTime)
	case errors.Is(err, contestdb.ErrNotFound):
		c.logger.Info("No contest end time configured yet")
	default:
		// Fail open: a read failure must not freeze the contest shut.
		c.mu.Lock()
		c.loadErr = err
		c.mu.Unlock()
		c.logger.Warn("Failed to load contest end time", slog.Any("error", err))
	}

	cancel, err := c.bus.Subscribe(ctx, events.ContestSettingsUpdated, func(_ context.Context, payload []byte) error {
		var p events.ContestSettingsUpdatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("failed to decode settings update: %w", err)
		}
		c.SetEndTime(p.EndTime)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to settings updates: %w", err)
	}
	c.cancelSub = cancel

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Tick(ctx)
			}
		}
	}()

	return nil
}

// SetEndTime applies a new authoritative end time. The end latch is tied to
// the value that fired it, so a later, still-future value re-arms the clock
// and reopens the gate.
func (c *Countdown) SetEndTime(endTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && endTime.Equal(c.endTime) {
		return
	}

	c.endTime = endTime
	c.loaded = true
	c.loadErr = nil

	if !c.latchedFor.IsZero() && endTime.After(c.clock.Now()) {
		c.latchedFor = time.Time{}
		c.winner = nil
		c.gate.Reopen()
		c.logger.Info("Contest reopened with new end time", slog.Time("end_time", endTime))
	}
}

// Tick advances the clock once. Exported so tests can drive it without the
// ticker.
func (c *Countdown) Tick(ctx context.Context) {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return
	}

	endTime := c.endTime
	remaining := endTime.Sub(c.clock.Now())
	alreadyFired := c.latchedFor.Equal(endTime)

	if remaining > 0 || alreadyFired {
		c.mu.Unlock()
		return
	}

	// Latch before the (possibly slow) resolution so a concurrent tick
	// cannot fire the transition twice.
	c.latchedFor = endTime
	c.mu.Unlock()

	c.gate.Close()
	c.logger.Info("Contest ended", slog.Time("end_time", endTime))
	c.resolve(ctx, endTime)
}

func (c *Countdown) resolve(ctx context.Context, endTime time.Time) {
	ratings, err := c.ratings.ListAll(ctx)
	if err != nil {
		// The contest stays closed; the winner just stays unresolved.
		c.logger.Error("Failed to list ratings for winner resolution", slog.Any("error", err))
		return
	}

	standings := contestdomain.ComputeStandings(ratings)
	payload := events.ContestEndedPayload{EndTime: endTime}
	payload.Standings = make([]events.Standing, len(standings))
	for i, s := range standings {
		payload.Standings[i] = events.Standing{
			ArtworkID:  s.ArtworkID,
			TotalScore: s.TotalScore,
			VoteCount:  s.VoteCount,
		}
	}

	if winner, ok := contestdomain.ResolveWinner(ratings); ok {
		c.mu.Lock()
		c.winner = &winner
		c.mu.Unlock()
		payload.WinnerArtworkID = winner.ArtworkID
		payload.WinnerScore = winner.TotalScore
		c.logger.Info("Winner resolved",
			slog.String("artwork_id", winner.ArtworkID),
			slog.Int("total_score", winner.TotalScore),
		)
	} else {
		c.logger.Info("Contest ended with no ratings; no winner selected")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("Failed to encode contest ended payload", slog.Any("error", err))
		return
	}
	if err := c.bus.Publish(ctx, events.ContestEnded, data); err != nil {
		c.logger.Error("Failed to publish contest ended event", slog.Any("error", err))
	}
}

// Status reports the clock snapshot. Remaining never goes negative.
func (c *Countdown) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadErr != nil {
		return Status{State: StateError}
	}
	if !c.loaded {
		return Status{State: StateLoading}
	}

	remaining := c.endTime.Sub(c.clock.Now())
	if remaining < 0 {
		remaining = 0
	}

	st := Status{
		State:     StateOpen,
		EndTime:   c.endTime,
		Remaining: remaining,
	}
	if c.latchedFor.Equal(c.endTime) {
		st.State = StateEnded
		st.Winner = c.winner
	}
	return st
}
