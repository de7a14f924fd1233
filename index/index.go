package index

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ragchat/model"
	"ragchat/store"
	"ragchat/types"
)

// Index owns the embedding capability and the vector store. One
// instance is process-wide shared state serving every ingestion and
// query; the store is initialized lazily on first use. Entries are
// append-only, there is no delete or update path.
type Index struct {
	embedder model.EmbedderInterface
	store    store.VectorStore

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool
}

func New(embedder model.EmbedderInterface, s store.VectorStore) *Index {
	return &Index{
		embedder: embedder,
		store:    s,
	}
}

func (ix *Index) ensureInit(ctx context.Context) error {
	ix.initOnce.Do(func() {
		ix.initErr = ix.store.Init(ctx)
	})
	return ix.initErr
}

// Add embeds every chunk and upserts the results, returning the number
// added. Embedding calls run concurrently but results keep chunk order.
func (ix *Index) Add(ctx context.Context, chunks []types.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	if err := ix.ensureInit(ctx); err != nil {
		return 0, err
	}

	vectors := make([][]float32, len(chunks))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4) // bound concurrency against the embedding backend
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			vec, err := ix.embedder.Embed(chunk.Text)
			if err != nil {
				return fmt.Errorf("embedding chunk %d: %w", i, err)
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	entries := make([]types.Entry, len(chunks))
	for i, chunk := range chunks {
		entries[i] = types.Entry{
			ID:        uuid.New(),
			Text:      chunk.Text,
			Metadata:  chunk.Metadata,
			Embedding: vectors[i],
		}
	}
	if err := ix.store.Upsert(ctx, entries); err != nil {
		return 0, err
	}

	ix.ready.Store(true)
	log.Printf("[INDEX] added %d chunks", len(entries))
	return len(entries), nil
}

// Search returns the k best matches for the query, best first. It
// fails with types.ErrNoData until the first successful Add; an
// initialized index with no matches returns an empty slice instead.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]types.Hit, error) {
	if !ix.ready.Load() {
		return nil, types.ErrNoData
	}

	vec, err := ix.embedder.Embed(query)
	if err != nil {
		return nil, err
	}
	return ix.store.Nearest(ctx, vec, k)
}

// Ready reports whether any data has ever been added.
func (ix *Index) Ready() bool {
	return ix.ready.Load()
}

func (ix *Index) Count(ctx context.Context) (int, error) {
	return ix.store.Count(ctx)
}
