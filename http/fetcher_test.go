package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/king8fisher/synset"
	synhttp "github.com/king8fisher/synset/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads into the cache directory", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<LexicalResource/>"))
		}))
		defer srv.Close()

		dir := t.TempDir()
		f := synhttp.NewFetcher(dir)
		path, err := f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<LexicalResource/>", string(data))
	})

	t.Run("reuses an intact cached copy", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("payload"))
		}))
		defer srv.Close()

		f := synhttp.NewFetcher(t.TempDir())
		_, err := f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.NoError(t, err)
		_, err = f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.NoError(t, err)

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("redownloads when the cached copy is corrupted", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("payload"))
		}))
		defer srv.Close()

		f := synhttp.NewFetcher(t.TempDir())
		path, err := f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("truncated"), 0o644))

		path2, err := f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.NoError(t, err)
		assert.Equal(t, path, path2)
		assert.Equal(t, int32(2), hits.Load())

		data, err := os.ReadFile(path2)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("non-200 responses are errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := synhttp.NewFetcher(t.TempDir())
		_, err := f.Fetch(context.Background(), srv.URL+"/lexicon.xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("URL without a file name is EINVALID", func(t *testing.T) {
		t.Parallel()

		f := synhttp.NewFetcher(t.TempDir())
		_, err := f.Fetch(context.Background(), "https://example.com/")
		require.Error(t, err)
		assert.Equal(t, synset.EINVALID, synset.ErrorCode(err))
	})

	t.Run("canceled context aborts the fetch", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("payload"))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := synhttp.NewFetcher(t.TempDir())
		_, err := f.Fetch(ctx, srv.URL+"/lexicon.xml")
		require.Error(t, err)
	})
}
