package contestservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/artfest/gallery-api/app/events"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	contestdb "github.com/artfest/gallery-api/app/modules/contest/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

// ContestService handles the admin and read-side contest operations. The
// tick loop itself lives in Countdown.
type ContestService struct {
	settings  contestdb.SettingsDB
	ratings   RatingSource
	bus       shared.EventBus
	countdown *Countdown
	logger    *slog.Logger
}

func NewContestService(
	settings contestdb.SettingsDB,
	ratings RatingSource,
	bus shared.EventBus,
	countdown *Countdown,
	logger *slog.Logger,
) *ContestService {
	return &ContestService{
		settings:  settings,
		ratings:   ratings,
		bus:       bus,
		countdown: countdown,
		logger:    logger,
	}
}

func (s *ContestService) Status() Status {
	return s.countdown.Status()
}

// UpdateEndTime persists the new end time and announces it on the bus. The
// local clock picks it up through the same subscription as every other
// instance.
func (s *ContestService) UpdateEndTime(ctx context.Context, endTime time.Time) error {
	if err := s.settings.SetEndTime(ctx, endTime); err != nil {
		return fmt.Errorf("failed to store contest end time: %w", err)
	}

	payload, err := json.Marshal(events.ContestSettingsUpdatedPayload{EndTime: endTime})
	if err != nil {
		return fmt.Errorf("failed to encode settings update: %w", err)
	}
	if err := s.bus.Publish(ctx, events.ContestSettingsUpdated, payload); err != nil {
		// The row is written; other instances will catch up on restart.
		s.logger.Error("Failed to publish settings update", slog.Any("error", err))
	}

	s.logger.Info("Contest end time updated", slog.Time("end_time", endTime))
	return nil
}

// Standings recomputes the aggregate table from the current rating set. No
// incremental caching; the displayed totals always match the records.
func (s *ContestService) Standings(ctx context.Context) ([]contestdomain.Standing, error) {
	ratings, err := s.ratings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return contestdomain.ComputeStandings(ratings), nil
}
