package loader

import (
	"context"

	"ragchat/types"
)

// Loader normalizes one content source into a sequence of records.
// Implementations: PDFLoader, WebsiteLoader, TextLoader.
type Loader interface {
	Load(ctx context.Context) ([]types.Record, error)
}
