package mock

import (
	"context"

	"github.com/king8fisher/synset"
)

var _ synset.ExportService = (*ExportService)(nil)

// ExportService is a mock implementation of synset.ExportService.
type ExportService struct {
	ExportFn func(ctx context.Context, ix *synset.Index, opts synset.ExportOptions) error
}

func (s *ExportService) Export(ctx context.Context, ix *synset.Index, opts synset.ExportOptions) error {
	return s.ExportFn(ctx, ix, opts)
}
