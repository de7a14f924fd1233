package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragchat/types"
)

func TestWebsiteLoaderExtractsBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Weather</title><style>p{color:red}</style></head>`+
			`<body><script>var x = 1;</script><p>The sky is blue.</p></body></html>`)
	}))
	defer srv.Close()

	records, err := NewWebsiteLoader(srv.URL).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "The sky is blue.", records[0].Text)
	assert.Equal(t, srv.URL, records[0].Metadata["source"])
	assert.Equal(t, "website", records[0].Metadata["type"])
}

func TestWebsiteLoaderNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewWebsiteLoader(srv.URL).Load(context.Background())

	var loadErr *types.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, srv.URL, loadErr.Source)
}

func TestWebsiteLoaderEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><script>ignored()</script></body></html>`)
	}))
	defer srv.Close()

	_, err := NewWebsiteLoader(srv.URL).Load(context.Background())

	var loadErr *types.LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestWebsiteLoaderUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewWebsiteLoader(url).Load(context.Background())

	var loadErr *types.LoadError
	require.True(t, errors.As(err, &loadErr))
}
