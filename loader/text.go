package loader

import (
	"context"

	"ragchat/types"
)

// TextLoader wraps raw pasted text. It cannot fail; rejecting
// empty input is the caller's job, not the loader's.
type TextLoader struct {
	text string
}

func NewTextLoader(text string) *TextLoader {
	return &TextLoader{text: text}
}

func (l *TextLoader) Load(ctx context.Context) ([]types.Record, error) {
	return []types.Record{{
		Text: l.text,
		Metadata: map[string]string{
			"source": "text-input",
			"type":   "text",
		},
	}}, nil
}
