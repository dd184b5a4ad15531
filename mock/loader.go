package mock

import (
	"context"

	"github.com/king8fisher/synset"
)

var _ synset.Loader = (*Loader)(nil)

// Loader is a mock implementation of synset.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (*synset.Lexicon, error)
}

func (l *Loader) Load(ctx context.Context, path string) (*synset.Lexicon, error) {
	return l.LoadFn(ctx, path)
}
