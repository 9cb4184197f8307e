package ratingdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Rating is one user's rating of one artwork. The composite primary key is
// the uniqueness guarantee behind the upsert contract: at most one row per
// (artwork, user) pair.
type Rating struct {
	bun.BaseModel `bun:"table:ratings"`

	ArtworkID string    `bun:"artwork_id,pk"`
	UserID    string    `bun:"user_id,pk"`
	Value     int       `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
