package commentdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Comment is a user comment on an artwork. Never updated after creation; no
// uniqueness constraint, a user may post any number of comments.
type Comment struct {
	bun.BaseModel `bun:"table:comments"`

	ID        string    `bun:"id,pk"`
	ArtworkID string    `bun:"artwork_id,notnull"`
	AuthorID  string    `bun:"author_id,notnull"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
