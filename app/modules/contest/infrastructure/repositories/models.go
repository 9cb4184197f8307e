package contestdb

import (
	"time"

	"github.com/uptrace/bun"
)

// settingsRowID is the fixed primary key of the singleton settings row. The
// system models exactly one contest window.
const settingsRowID = 1

// ContestSettings holds the single authoritative contest end time.
type ContestSettings struct {
	bun.BaseModel `bun:"table:contest_settings"`

	ID      int64     `bun:"id,pk"`
	EndTime time.Time `bun:"end_time,notnull"`
}
