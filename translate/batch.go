package translate

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/bloom"
	"golang.org/x/sync/errgroup"
)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Bloom filter sizing for URL deduplication.
const (
	dedupMinCapacity       = 1000
	dedupFalsePositiveRate = 0.001
)

// Batch translates a list of article URLs, isolating per-URL failures.
type Batch struct {
	Pipeline *Pipeline

	// Runs records each outcome when set.
	Runs preklad.RunService

	// Limiter throttles requests per source domain when set.
	Limiter *DomainLimiter

	// Concurrency bounds the number of articles processed at once.
	// Defaults to 4.
	Concurrency int

	Logger *slog.Logger
}

// Process translates every URL in order, writing each article's output
// under outputDir. Duplicate URLs are skipped. A failed URL never stops
// the batch; only context cancellation does. The returned Report lists
// every URL with its outcome.
func (b *Batch) Process(ctx context.Context, urls []string, outputDir string, progress ProgressFunc) (*Report, error) {
	report := &Report{
		Total:     len(urls),
		Items:     make([]ReportItem, len(urls)),
		StartedAt: time.Now().UTC(),
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	capacity := uint(len(urls))
	if capacity < dedupMinCapacity {
		capacity = dedupMinCapacity
	}
	seen := bloom.NewFilter(capacity, dedupFalsePositiveRate)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, raw := range urls {
		// Deduplication happens on the submitting goroutine so input
		// order decides which occurrence runs.
		if seen.TestAndAdd(raw) {
			report.Items[i] = ReportItem{URL: raw, Status: ItemStatusSkipped}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Add(1)),
					Total:     len(urls),
					URL:       raw,
				})
			}
			continue
		}

		i, raw := i, raw
		g.Go(func() error {
			item := b.processOne(gctx, raw, outputDir)
			report.Items[i] = item

			if progress != nil {
				event := ProgressEvent{
					Completed: int(completed.Add(1)),
					Total:     len(urls),
					URL:       raw,
				}
				if item.Status == ItemStatusFailed {
					event.Type = ProgressFailed
					event.Error = preklad.Errorf(preklad.EINTERNAL, "%s", item.Error)
				} else {
					event.Type = ProgressCompleted
				}
				progress(event)
			}
			return gctx.Err()
		})
	}

	err := g.Wait()

	for _, item := range report.Items {
		switch item.Status {
		case ItemStatusOK:
			report.Succeeded++
		case ItemStatusFailed:
			report.Failed++
		case ItemStatusSkipped:
			report.Skipped++
		}
	}
	report.FinishedAt = time.Now().UTC()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})
	}

	return report, err
}

// processOne runs the pipeline for a single URL and records the outcome.
func (b *Batch) processOne(ctx context.Context, rawURL, outputDir string) ReportItem {
	if b.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := b.Limiter.Wait(ctx, u.Host); err != nil {
				return ReportItem{URL: rawURL, Status: ItemStatusFailed, Error: "canceled"}
			}
		}
	}

	res, err := b.Pipeline.Run(ctx, rawURL, outputDir)

	run := &preklad.Run{URL: rawURL}
	item := ReportItem{URL: rawURL}
	if err != nil {
		run.Status = preklad.RunStatusFailed
		run.Error = preklad.ErrorMessage(err)
		item.Status = ItemStatusFailed
		item.Error = preklad.ErrorMessage(err)
		b.logger().Error("article failed", "url", rawURL, "err", err)
	} else {
		run.Status = preklad.RunStatusOK
		run.Title = res.Meta.Title
		run.OutputDir = res.OutputDir
		run.ContentHash = res.ContentHash
		run.Warnings = len(res.Warnings)
		item.Status = ItemStatusOK
		item.OutputDir = res.OutputDir
		item.Warnings = len(res.Warnings)
	}

	if b.Runs != nil {
		if err := b.Runs.CreateRun(ctx, run); err != nil {
			b.logger().Error("failed to record run", "url", rawURL, "err", err)
		}
	}

	return item
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.DiscardHandler)
}
