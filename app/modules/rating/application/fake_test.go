package ratingservice

import (
	"context"
	"sync"

	ratingdb "github.com/artfest/gallery-api/app/modules/rating/infrastructure/repositories"
)

// FakeRatingDB is an in-memory ratingdb.RatingDB with real upsert semantics,
// keyed on (artworkID, userID).
type FakeRatingDB struct {
	mu      sync.Mutex
	records map[[2]string]int
	trace   []string

	UpsertErr error
	ListErr   error
}

func NewFakeRatingDB() *FakeRatingDB {
	return &FakeRatingDB{records: make(map[[2]string]int)}
}

func (f *FakeRatingDB) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRatingDB) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRatingDB) Upsert(ctx context.Context, artworkID, userID string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Upsert")
	if f.UpsertErr != nil {
		return f.UpsertErr
	}
	f.records[[2]string{artworkID, userID}] = value
	return nil
}

func (f *FakeRatingDB) Delete(ctx context.Context, artworkID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Delete")
	delete(f.records, [2]string{artworkID, userID})
	return nil
}

func (f *FakeRatingDB) Get(ctx context.Context, artworkID, userID string) (*ratingdb.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Get")
	value, ok := f.records[[2]string{artworkID, userID}]
	if !ok {
		return nil, nil
	}
	return &ratingdb.Rating{ArtworkID: artworkID, UserID: userID, Value: value}, nil
}

func (f *FakeRatingDB) ListByArtwork(ctx context.Context, artworkID string) ([]ratingdb.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListByArtwork")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []ratingdb.Rating
	for key, value := range f.records {
		if key[0] == artworkID {
			out = append(out, ratingdb.Rating{ArtworkID: key[0], UserID: key[1], Value: value})
		}
	}
	return out, nil
}

func (f *FakeRatingDB) ListAll(ctx context.Context) ([]ratingdb.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListAll")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []ratingdb.Rating
	for key, value := range f.records {
		out = append(out, ratingdb.Rating{ArtworkID: key[0], UserID: key[1], Value: value})
	}
	return out, nil
}
