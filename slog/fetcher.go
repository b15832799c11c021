// Package slog provides logging decorators for the pipeline services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkubicek/preklad"
)

// Ensure LoggingFetcher implements preklad.Fetcher.
var _ preklad.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   preklad.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next preklad.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *preklad.SourceDocument, err error) {
	defer func(begin time.Time) {
		size := 0
		if doc != nil {
			size = len(doc.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
