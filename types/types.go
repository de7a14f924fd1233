package types

import "github.com/google/uuid"

// Record is one unit of loaded content before splitting. Metadata
// always carries at least "source" and "type".
type Record struct {
	Text     string
	Metadata map[string]string
}

// Chunk is a Record after splitting: same shape, text bounded by the
// configured chunk size.
type Chunk struct {
	Text     string
	Metadata map[string]string
}

// Entry is a chunk plus its embedding, as held by the vector store.
type Entry struct {
	ID        uuid.UUID
	Text      string
	Metadata  map[string]string
	Embedding []float32
}

// Hit is one retrieval result. Best matches carry the highest score.
type Hit struct {
	Text     string
	Metadata map[string]string
	Score    float64
}

// Answer is the response of the answer pipeline.
type Answer struct {
	Answer      string   `json:"answer"`
	Sources     int      `json:"sources"`
	SourceTypes []string `json:"sourceTypes,omitempty"`
}

type Config struct {
	StoreBackend string
	ChunkSize    int
	ChunkOverlap int
	UploadDir    string
}
