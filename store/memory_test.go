package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragchat/types"
)

func entry(text string, vec []float32) types.Entry {
	return types.Entry{
		ID:        uuid.New(),
		Text:      text,
		Metadata:  map[string]string{"type": "text"},
		Embedding: vec,
	}
}

func TestMemoryStoreNearestOrdersByScore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.Upsert(ctx, []types.Entry{
		entry("east", []float32{1, 0}),
		entry("north", []float32{0, 1}),
		entry("northeast", []float32{1, 1}),
	}))

	hits, err := s.Nearest(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "east", hits[0].Text)
	assert.Equal(t, "northeast", hits[1].Text)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestMemoryStoreNearestOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	hits, err := s.Nearest(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestMemoryStoreCount(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, s.Upsert(ctx, []types.Entry{entry("a", []float32{1})}))

	count, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
