package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/king8fisher/synset"
)

// Ensure LoggingExportService implements synset.ExportService.
var _ synset.ExportService = (*LoggingExportService)(nil)

// LoggingExportService wraps an ExportService with per-run logging and
// debug-level phase progress.
type LoggingExportService struct {
	next   synset.ExportService
	logger *slog.Logger
}

// NewLoggingExportService creates a new LoggingExportService.
func NewLoggingExportService(next synset.ExportService, logger *slog.Logger) *LoggingExportService {
	return &LoggingExportService{next: next, logger: logger}
}

// Export delegates to the wrapped service, logging phase completions at
// debug level and the whole run at info level. The caller's progress
// callback still receives every notification.
func (s *LoggingExportService) Export(ctx context.Context, ix *synset.Index, opts synset.ExportOptions) (err error) {
	inner := opts.Progress
	opts.Progress = func(p synset.ExportProgress) {
		if p.Current == p.Total {
			s.logger.Debug("export phase complete",
				"phase", p.Phase,
				"rows", p.Total,
			)
		}
		if inner != nil {
			inner(p)
		}
	}

	defer func(begin time.Time) {
		s.logger.Info("lexicon export",
			"words", len(ix.Words()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Export(ctx, ix, opts)
}
