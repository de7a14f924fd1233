package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragchat/index"
	"ragchat/splitter"
	"ragchat/store"
	"ragchat/types"
)

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(text string) ([]float32, error) {
	vec := make([]float32, 8)
	for i, r := range text {
		vec[i%8] += float32(r)
	}
	return vec, nil
}

func newTestService() (*Service, *index.Index) {
	ix := index.New(fakeEmbedder{}, store.NewMemoryStore())
	return New(ix, splitter.New(1000, 200)), ix
}

func TestIngestTextCountsChunks(t *testing.T) {
	svc, ix := newTestService()

	count, err := svc.IngestText(context.Background(), "A. B. C.")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, ix.Ready())
}

func TestIngestTextRejectsEmptyInput(t *testing.T) {
	svc, ix := newTestService()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.IngestText(context.Background(), text)

		var valErr *types.ValidationError
		require.True(t, errors.As(err, &valErr), "input %q", text)
	}
	assert.False(t, ix.Ready(), "validation failures must not touch the index")
}

func TestIngestWebsiteRejectsMalformedURL(t *testing.T) {
	svc, ix := newTestService()

	for _, url := range []string{"not-a-url", "ftp://example.com", "http://"} {
		_, err := svc.IngestWebsite(context.Background(), url)

		var valErr *types.ValidationError
		require.True(t, errors.As(err, &valErr), "url %q", url)
		assert.Equal(t, "Invalid URL format", valErr.Message)
	}
	assert.False(t, ix.Ready())
}

func TestIngestWebsiteWrapsLoadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, _ := newTestService()
	_, err := svc.IngestWebsite(context.Background(), srv.URL)

	var ingestErr *types.IngestError
	require.True(t, errors.As(err, &ingestErr))
	var loadErr *types.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestIngestWebsiteIndexesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Paris is the capital of France.</p></body></html>`))
	}))
	defer srv.Close()

	svc, ix := newTestService()
	count, err := svc.IngestWebsite(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	hits, err := ix.Search(context.Background(), "capital of France", 3)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "website", hits[0].Metadata["type"])
	assert.Equal(t, srv.URL, hits[0].Metadata["source"])
}

func TestIngestPDFMissingFile(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.IngestPDF(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	var ingestErr *types.IngestError
	require.True(t, errors.As(err, &ingestErr))
}
