package artworkservice

import (
	"bytes"
	"context"
	"io"
	"sync"

	artworkdb "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/repositories"
)

// FakeArtworkDB is an in-memory artworkdb.ArtworkDB keeping insertion order.
type FakeArtworkDB struct {
	mu       sync.Mutex
	artworks []artworkdb.Artwork
	trace    []string

	CreateErr error
	ListErr   error
}

func NewFakeArtworkDB() *FakeArtworkDB {
	return &FakeArtworkDB{}
}

func (f *FakeArtworkDB) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeArtworkDB) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeArtworkDB) Create(ctx context.Context, artwork *artworkdb.Artwork) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Create")
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.artworks = append(f.artworks, *artwork)
	return nil
}

func (f *FakeArtworkDB) GetByID(ctx context.Context, artworkID string) (*artworkdb.Artwork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetByID")
	for i := range f.artworks {
		if f.artworks[i].ID == artworkID {
			out := f.artworks[i]
			return &out, nil
		}
	}
	return nil, artworkdb.ErrNotFound
}

func (f *FakeArtworkDB) ListApproved(ctx context.Context) ([]artworkdb.Artwork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListApproved")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []artworkdb.Artwork
	for _, artwork := range f.artworks {
		if artwork.Approved {
			out = append(out, artwork)
		}
	}
	return out, nil
}

func (f *FakeArtworkDB) ListAll(ctx context.Context) ([]artworkdb.Artwork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListAll")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]artworkdb.Artwork, len(f.artworks))
	copy(out, f.artworks)
	return out, nil
}

func (f *FakeArtworkDB) Approve(ctx context.Context, artworkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Approve")
	for i := range f.artworks {
		if f.artworks[i].ID == artworkID {
			f.artworks[i].Approved = true
			return nil
		}
	}
	return artworkdb.ErrNotFound
}

func (f *FakeArtworkDB) SetImageURL(ctx context.Context, artworkID, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetImageURL")
	for i := range f.artworks {
		if f.artworks[i].ID == artworkID {
			f.artworks[i].ImageURL = imageURL
			return nil
		}
	}
	return artworkdb.ErrNotFound
}

func (f *FakeArtworkDB) Delete(ctx context.Context, artworkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Delete")
	for i := range f.artworks {
		if f.artworks[i].ID == artworkID {
			f.artworks = append(f.artworks[:i], f.artworks[i+1:]...)
			return nil
		}
	}
	return artworkdb.ErrNotFound
}

// FakeAggregates serves canned totals keyed by artwork id.
type FakeAggregates struct {
	Totals map[string]int
	Counts map[string]int
	Err    error
}

func (f *FakeAggregates) TotalScore(ctx context.Context, artworkID string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Totals[artworkID], nil
}

func (f *FakeAggregates) VoteCount(ctx context.Context, artworkID string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Counts[artworkID], nil
}

// FakeStore captures the last save and returns a fixed URL scheme.
type FakeStore struct {
	SavedName string
	SavedData []byte
	SaveErr   error
}

func (f *FakeStore) Save(filename string, size int64, r io.Reader) (string, error) {
	if f.SaveErr != nil {
		return "", f.SaveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	f.SavedName = filename
	f.SavedData = buf.Bytes()
	return "/uploads/" + filename, nil
}
