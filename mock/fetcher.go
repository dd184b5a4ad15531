// Package mock provides mock implementations of synset service interfaces.
package mock

import (
	"context"

	"github.com/king8fisher/synset"
)

var _ synset.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of synset.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
