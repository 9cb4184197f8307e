package contestservice

import (
	"context"
	"time"

	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
)

// State is the externally visible phase of the contest clock.
type State string

const (
	StateLoading State = "loading"
	StateOpen    State = "open"
	StateEnded   State = "ended"
	StateError   State = "error"
)

// Status is a snapshot of the clock for the status endpoint.
type Status struct {
	State     State
	EndTime   time.Time
	Remaining time.Duration
	Winner    *contestdomain.WinnerResult
}

// RatingSource supplies the rating snapshot that winner resolution and
// standings aggregate over.
type RatingSource interface {
	ListAll(ctx context.Context) ([]contestdomain.RatingEntry, error)
}

// Service drives the contest lifecycle.
type Service interface {
	Status() Status
	UpdateEndTime(ctx context.Context, endTime time.Time) error
	Standings(ctx context.Context) ([]contestdomain.Standing, error)
	StandingsChartPNG(ctx context.Context) ([]byte, error)
	StandingsWorkbook(ctx context.Context) ([]byte, error)
}
