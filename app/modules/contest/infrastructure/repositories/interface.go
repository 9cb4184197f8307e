package contestdb

import (
	"context"
	"time"
)

// SettingsDB is the contract for the singleton contest settings row.
type SettingsDB interface {
	GetEndTime(ctx context.Context) (time.Time, error)
	SetEndTime(ctx context.Context, endTime time.Time) error
}
