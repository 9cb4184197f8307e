package artworkdb

import "context"

// ArtworkDB is the store contract for artworks.
type ArtworkDB interface {
	Create(ctx context.Context, artwork *Artwork) error
	GetByID(ctx context.Context, artworkID string) (*Artwork, error)

	// ListApproved is the public gallery view.
	ListApproved(ctx context.Context) ([]Artwork, error)

	// ListAll is the unfiltered admin view.
	ListAll(ctx context.Context) ([]Artwork, error)

	Approve(ctx context.Context, artworkID string) error
	SetImageURL(ctx context.Context, artworkID, imageURL string) error

	// Delete removes the artwork and, in the same transaction, every rating
	// and comment referencing it.
	Delete(ctx context.Context, artworkID string) error
}
