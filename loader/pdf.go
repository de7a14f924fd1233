package loader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"ragchat/types"
)

// PDFLoader extracts plain text from a PDF file, one record per page.
type PDFLoader struct {
	path string
}

func NewPDFLoader(path string) *PDFLoader {
	return &PDFLoader{path: path}
}

func (l *PDFLoader) Load(ctx context.Context) ([]types.Record, error) {
	// validate first so a renamed .docx fails with a clear error
	// instead of a parser panic further down
	if err := pdfapi.ValidateFile(l.path, nil); err != nil {
		return nil, &types.LoadError{Source: l.path, Err: fmt.Errorf("not a valid PDF: %w", err)}
	}

	f, r, err := pdf.Open(l.path)
	if err != nil {
		return nil, &types.LoadError{Source: l.path, Err: err}
	}
	defer f.Close()

	name := filepath.Base(l.path)
	var records []types.Record
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("[PDF] skipping page %d of %s: %v", i, name, err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		records = append(records, types.Record{
			Text: text,
			Metadata: map[string]string{
				"source": name,
				"type":   "pdf",
				"page":   strconv.Itoa(i),
			},
		})
	}
	if len(records) == 0 {
		return nil, &types.LoadError{Source: l.path, Err: fmt.Errorf("no extractable text")}
	}
	return records, nil
}
