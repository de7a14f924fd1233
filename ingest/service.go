package ingest

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"ragchat/index"
	"ragchat/loader"
	"ragchat/splitter"
	"ragchat/types"
)

// Service runs the write path: load, split, index. One operation per
// source type, all reporting the number of chunks actually added.
type Service struct {
	index    *index.Index
	splitter *splitter.Splitter
	logger   *slog.Logger
}

func New(ix *index.Index, sp *splitter.Splitter) *Service {
	return &Service{
		index:    ix,
		splitter: sp,
		logger:   slog.Default(),
	}
}

// IngestPDF loads the PDF at path and indexes its chunks.
func (s *Service) IngestPDF(ctx context.Context, path string) (int, error) {
	return s.run(ctx, loader.NewPDFLoader(path))
}

// IngestText indexes raw pasted text.
func (s *Service) IngestText(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &types.ValidationError{Message: "No text provided"}
	}
	return s.run(ctx, loader.NewTextLoader(text))
}

// IngestWebsite validates the URL before any network access, then
// fetches and indexes the page.
func (s *Service) IngestWebsite(ctx context.Context, rawURL string) (int, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return 0, &types.ValidationError{Message: "Invalid URL format"}
	}
	return s.run(ctx, loader.NewWebsiteLoader(rawURL))
}

func (s *Service) run(ctx context.Context, l loader.Loader) (int, error) {
	records, err := l.Load(ctx)
	if err != nil {
		return 0, &types.IngestError{Stage: "load", Err: err}
	}

	chunks := s.splitter.Split(records)
	count, err := s.index.Add(ctx, chunks)
	if err != nil {
		// no rollback: chunks upserted before the failure remain
		return count, &types.IngestError{Stage: "index", Err: err}
	}

	s.logger.Info("ingested source", "records", len(records), "chunks", count)
	return count, nil
}
