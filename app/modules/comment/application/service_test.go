package commentservice

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfest/gallery-api/app/metrics"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

type fakeCommentDB struct {
	mu       sync.Mutex
	comments map[string]commentdb.Comment
	creates  int
}

func newFakeCommentDB() *fakeCommentDB {
	return &fakeCommentDB{comments: make(map[string]commentdb.Comment)}
}

func (f *fakeCommentDB) Create(ctx context.Context, comment *commentdb.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeCommentDB) ListByArtwork(ctx context.Context, artworkID string) ([]commentdb.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []commentdb.Comment
	for _, c := range f.comments {
		if c.ArtworkID == artworkID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentDB) Delete(ctx context.Context, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[commentID]; !ok {
		return commentdb.ErrNotFound
	}
	delete(f.comments, commentID)
	return nil
}

func newTestService(db *fakeCommentDB, gate *contestdomain.Gate) *CommentService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCommentService(db, gate, metrics.New(), logger)
}

func TestAddComment(t *testing.T) {
	db := newFakeCommentDB()
	svc := newTestService(db, contestdomain.NewGate())
	ctx := context.Background()

	content := gofakeit.Sentence(8)
	comment, err := svc.AddComment(ctx, "art-1", "user-1", content)
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, content, comment.Content)

	got, err := svc.ListByArtwork(ctx, "art-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAddComment_TrimsAndRejectsEmpty(t *testing.T) {
	db := newFakeCommentDB()
	svc := newTestService(db, contestdomain.NewGate())
	ctx := context.Background()

	comment, err := svc.AddComment(ctx, "art-1", "user-1", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", comment.Content)

	_, err = svc.AddComment(ctx, "art-1", "user-1", "   \t  ")
	assert.ErrorIs(t, err, shared.ErrValidation)

	// Validation rejected before any store call.
	assert.Equal(t, 1, db.creates)
}

func TestAddComment_GateClosed(t *testing.T) {
	db := newFakeCommentDB()
	gate := contestdomain.NewGate()
	gate.Close()
	svc := newTestService(db, gate)

	_, err := svc.AddComment(context.Background(), "art-1", "user-1", "nice piece")
	assert.ErrorIs(t, err, shared.ErrContestEnded)
	assert.Zero(t, db.creates)
}

func TestDeleteComment(t *testing.T) {
	db := newFakeCommentDB()
	svc := newTestService(db, contestdomain.NewGate())
	ctx := context.Background()

	comment, err := svc.AddComment(ctx, "art-1", "user-1", "first!")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, comment.ID))
	assert.ErrorIs(t, svc.DeleteComment(ctx, comment.ID), shared.ErrNotFound)
}
