// Package slog provides logging decorators for synset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/king8fisher/synset"
)

// Ensure LoggingLoader implements synset.Loader.
var _ synset.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with load timing and size logging.
type LoggingLoader struct {
	next   synset.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next synset.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (lex *synset.Lexicon, err error) {
	defer func(begin time.Time) {
		entries, synsets := 0, 0
		if lex != nil {
			entries = len(lex.Entries)
			synsets = len(lex.Synsets)
		}
		l.logger.Info("lexicon load",
			"path", path,
			"entries", entries,
			"synsets", synsets,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
