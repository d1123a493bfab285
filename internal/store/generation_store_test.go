package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/store"
	"github.com/joestump/scribo/internal/testutil"
)

func newGenerationStore(t *testing.T) *store.GenerationStore {
	t.Helper()
	return store.NewGenerationStore(testutil.NewTestDB(t))
}

func TestGenerationCreateAndGet(t *testing.T) {
	gs := newGenerationStore(t)
	ctx := context.Background()

	g, err := gs.Create(ctx, store.NewGeneration{
		Owner:      "alice",
		Tool:       catalog.Script,
		TemplateID: "tiktok-viral",
		Prompt:     "Write a viral TikTok script about tea",
		Content:    "HOOK: ...",
		Provider:   "gemini",
		Model:      "gemini-2.0-flash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)

	got, err := gs.Get(ctx, "alice", g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, catalog.Script, got.Tool)
	assert.Equal(t, "tiktok-viral", got.TemplateID)
	assert.Equal(t, "HOOK: ...", got.Content)
	assert.WithinDuration(t, g.CreatedAt, got.CreatedAt, time.Second)
}

func TestGenerationGetNotFound(t *testing.T) {
	gs := newGenerationStore(t)
	_, err := gs.Get(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGenerationListRecent(t *testing.T) {
	gs := newGenerationStore(t)
	ctx := context.Background()

	for i, tool := range []catalog.Kind{catalog.Title, catalog.Caption, catalog.Title} {
		_, err := gs.Create(ctx, store.NewGeneration{Owner: "alice", Tool: tool, Prompt: "p", Content: string(rune('a' + i))})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := gs.ListRecent(ctx, "alice", "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Content, "newest first")

	titles, err := gs.ListRecent(ctx, "alice", catalog.Title, 10)
	require.NoError(t, err)
	assert.Len(t, titles, 2)

	limited, err := gs.ListRecent(ctx, "alice", "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	n, err := gs.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestGenerationsAreScopedToOwner(t *testing.T) {
	gs := newGenerationStore(t)
	ctx := context.Background()

	mine, err := gs.Create(ctx, store.NewGeneration{Owner: "alice", Tool: catalog.Script, Prompt: "p", Content: "private"})
	require.NoError(t, err)
	_, err = gs.Create(ctx, store.NewGeneration{Tool: catalog.Script, Prompt: "p", Content: "api call"})
	require.NoError(t, err)

	others, err := gs.ListRecent(ctx, "bob", "", 10)
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = gs.Get(ctx, "bob", mine.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, gs.Delete(ctx, "bob", mine.ID), store.ErrNotFound)

	own, err := gs.ListRecent(ctx, "alice", "", 10)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "private", own[0].Content)

	unowned, err := gs.ListRecent(ctx, "", "", 10)
	require.NoError(t, err)
	require.Len(t, unowned, 1)
	assert.Equal(t, "api call", unowned[0].Content)
}

func TestGenerationDelete(t *testing.T) {
	gs := newGenerationStore(t)
	ctx := context.Background()

	g, err := gs.Create(ctx, store.NewGeneration{Owner: "alice", Tool: catalog.Ideas, Prompt: "p", Content: "c"})
	require.NoError(t, err)
	require.NoError(t, gs.Delete(ctx, "alice", g.ID))
	assert.ErrorIs(t, gs.Delete(ctx, "alice", g.ID), store.ErrNotFound)
}
