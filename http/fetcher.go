// Package http provides an HTTP-based implementation of synset.Fetcher
// for downloading lexicon source files into an on-disk cache.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/king8fisher/synset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Lexicon
// source files run to ~100MB, so it is generous.
const DefaultFetchTimeout = 5 * time.Minute

// hashSuffix names the integrity sidecar written next to a cached file.
const hashSuffix = ".xxh64"

// Ensure Fetcher implements synset.Fetcher at compile time.
var _ synset.Fetcher = (*Fetcher)(nil)

// Fetcher downloads lexicon files over HTTP and caches them on disk.
// A cached copy whose xxHash sidecar still matches is reused without a
// network round trip.
type Fetcher struct {
	client   *http.Client
	cacheDir string
	timeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client. A client set here wins over WithTimeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher caching downloads under cacheDir.
func NewFetcher(cacheDir string, opts ...Option) *Fetcher {
	f := &Fetcher{
		cacheDir: cacheDir,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch returns the local path of the file at rawURL, downloading it into
// the cache unless an intact cached copy already exists.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", synset.Errorf(synset.EINVALID, "invalid source URL %q: %v", rawURL, err)
	}
	name := filepath.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", synset.Errorf(synset.EINVALID, "source URL %q has no file name", rawURL)
	}
	dest := filepath.Join(f.cacheDir, name)

	if f.cacheIntact(dest) {
		return dest, nil
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	tmp, err := os.CreateTemp(f.cacheDir, name+".tmp-")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), resp.Body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest+hashSuffix, []byte(hashString(h.Sum64())), 0o644); err != nil {
		return "", err
	}

	return dest, nil
}

// cacheIntact reports whether dest exists and still matches its sidecar.
// A missing sidecar or a mismatching hash forces a fresh download.
func (f *Fetcher) cacheIntact(dest string) bool {
	want, err := os.ReadFile(dest + hashSuffix)
	if err != nil {
		return false
	}
	file, err := os.Open(dest)
	if err != nil {
		return false
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return false
	}
	return string(want) == hashString(h.Sum64())
}

func hashString(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
