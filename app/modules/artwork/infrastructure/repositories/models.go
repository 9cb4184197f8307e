package artworkdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Artwork is a contest entry. Submissions start unapproved and only appear in
// the public gallery after an admin approval.
type Artwork struct {
	bun.BaseModel `bun:"table:artworks"`

	ID          string    `bun:"id,pk"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description"`
	ImageURL    string    `bun:"image_url"`
	OwnerID     string    `bun:"owner_id,notnull"`
	Approved    bool      `bun:"approved,notnull,default:false"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
