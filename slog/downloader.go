package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkubicek/preklad"
)

// Ensure LoggingDownloader implements preklad.Downloader.
var _ preklad.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with debug logging.
type LoggingDownloader struct {
	next   preklad.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next preklad.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (asset *preklad.Asset, err error) {
	defer func(begin time.Time) {
		size := 0
		if asset != nil {
			size = len(asset.Body)
		}
		d.logger.Debug("download asset",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
