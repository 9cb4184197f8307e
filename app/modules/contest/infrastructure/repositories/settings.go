package contestdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type SettingsDBImpl struct {
	DB *bun.DB
}

// GetEndTime reads the singleton end time.
func (db *SettingsDBImpl) GetEndTime(ctx context.Context) (time.Time, error) {
	settings := new(ContestSettings)

	err := db.DB.NewSelect().
		Model(settings).
		Where("id = ?", settingsRowID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("failed to fetch contest settings: %w", err)
	}

	return settings.EndTime, nil
}

// SetEndTime upserts the singleton row with the new end time.
func (db *SettingsDBImpl) SetEndTime(ctx context.Context, endTime time.Time) error {
	settings := ContestSettings{
		ID:      settingsRowID,
		EndTime: endTime,
	}

	_, err := db.DB.NewInsert().
		Model(&settings).
		On("CONFLICT (id) DO UPDATE").
		Set("end_time = EXCLUDED.end_time").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update contest end time: %w", err)
	}

	return nil
}
