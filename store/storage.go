package store

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"ragchat/types"
)

// VectorStore is the storage capability behind the vector index:
// upsert embedded chunks, return the k nearest to a query vector.
type VectorStore interface {
	Init(ctx context.Context) error
	Upsert(ctx context.Context, entries []types.Entry) error
	Nearest(ctx context.Context, vector []float32, k int) ([]types.Hit, error)
	Count(ctx context.Context) (int, error)
}

var _ VectorStore = (*PostgresStore)(nil)

// PostgresStore keeps entries in a pgvector table and ranks by cosine
// distance.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{
		pool: pool,
	}, nil
}

func (p *PostgresStore) Init(ctx context.Context) error {
	query := `
    CREATE EXTENSION IF NOT EXISTS vector;

    CREATE TABLE IF NOT EXISTS entries (
        id UUID PRIMARY KEY,
        content TEXT NOT NULL,
        metadata JSONB NOT NULL DEFAULT '{}',
        embedding vector(768)
    );

	CREATE INDEX IF NOT EXISTS idx_entries_embedding ON entries USING ivfflat (embedding vector_cosine_ops)
	WITH (lists = 100);
    `
	_, err := p.pool.Exec(ctx, query)
	return err
}

func (p *PostgresStore) Upsert(ctx context.Context, entries []types.Entry) error {
	query := `INSERT INTO entries (id, content, metadata, embedding)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding
		`
	for _, e := range entries {
		_, err := p.pool.Exec(ctx, query, e.ID, e.Text, e.Metadata, pgvector.NewVector(e.Embedding))
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *PostgresStore) Nearest(ctx context.Context, vector []float32, k int) ([]types.Hit, error) {
	query := `
		SELECT content, metadata, 1-(embedding <=> $1) as score
		FROM entries
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := p.pool.Query(ctx, query, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []types.Hit
	for rows.Next() {
		var hit types.Hit
		if err := rows.Scan(&hit.Text, &hit.Metadata, &hit.Score); err != nil {
			return nil, err
		}
		log.Printf("[SEARCH] hit from %s (score: %.4f)", hit.Metadata["source"], hit.Score)
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

func (p *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := p.pool.QueryRow(ctx, "SELECT count(*) FROM entries").Scan(&count)
	return count, err
}

// Close releases the connection pool.
func (p *PostgresStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
		log.Println("Postgres connection pool is closed")
	}
	return nil
}
