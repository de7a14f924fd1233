package index

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragchat/store"
	"ragchat/types"
)

// fakeEmbedder buckets characters into a fixed dimension, deterministic
// and cheap. Identical texts map to identical vectors.
type fakeEmbedder struct{}

func (fakeEmbedder) Embed(text string) ([]float32, error) {
	vec := make([]float32, 8)
	for i, r := range text {
		vec[i%8] += float32(r)
	}
	return vec, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(text string) ([]float32, error) {
	return nil, fmt.Errorf("embedding backend down")
}

func chunk(text, typ string) types.Chunk {
	return types.Chunk{Text: text, Metadata: map[string]string{"source": "text-input", "type": typ}}
}

func TestSearchBeforeAnyAdd(t *testing.T) {
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	_, err := ix.Search(context.Background(), "anything", 3)

	require.ErrorIs(t, err, types.ErrNoData)
	assert.False(t, ix.Ready())
}

func TestAddThenSearch(t *testing.T) {
	ctx := context.Background()
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	count, err := ix.Add(ctx, []types.Chunk{
		chunk("A", "text"),
		chunk("completely different content zzz", "website"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, ix.Ready())

	hits, err := ix.Search(ctx, "A", 3)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "A", hits[0].Text)
	assert.Equal(t, "text", hits[0].Metadata["type"])
}

func TestAddEmptyChunks(t *testing.T) {
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	count, err := ix.Add(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.False(t, ix.Ready(), "an empty add must not mark the index ready")
}

func TestAddPropagatesEmbedderFailure(t *testing.T) {
	ix := New(failingEmbedder{}, store.NewMemoryStore())

	_, err := ix.Add(context.Background(), []types.Chunk{chunk("x", "text")})

	require.Error(t, err)
	assert.False(t, ix.Ready())
}

func TestSearchAfterAddNeverFailsWithNoData(t *testing.T) {
	ctx := context.Background()
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	_, err := ix.Add(ctx, []types.Chunk{chunk("hello world", "text")})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := ix.Search(ctx, "query", 3)
		require.NoError(t, err)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	_, err := ix.Add(ctx, []types.Chunk{chunk("one", "text"), chunk("two", "text")})
	require.NoError(t, err)

	count, err := ix.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestErrNoDataIsDistinguishable(t *testing.T) {
	ix := New(fakeEmbedder{}, store.NewMemoryStore())

	_, err := ix.Search(context.Background(), "q", 1)

	assert.True(t, errors.Is(err, types.ErrNoData))
}
