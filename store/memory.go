package store

import (
	"context"
	"math"
	"sort"
	"sync"

	"ragchat/types"
)

var _ VectorStore = (*MemoryStore)(nil)

// MemoryStore is a brute-force cosine similarity store. It backs the
// service in setups without Postgres and the test suite.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []types.Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(ctx context.Context) error { return nil }

func (s *MemoryStore) Upsert(ctx context.Context, entries []types.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *MemoryStore) Nearest(ctx context.Context, vector []float32, k int) ([]types.Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits := make([]types.Hit, 0, len(s.entries))
	for _, e := range s.entries {
		hits = append(hits, types.Hit{
			Text:     e.Text,
			Metadata: e.Metadata,
			Score:    cosine(e.Embedding, vector),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
