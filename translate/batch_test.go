package translate_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/goquery"
	"github.com/dkubicek/preklad/lexicon"
	"github.com/dkubicek/preklad/mock"
	"github.com/dkubicek/preklad/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatchPipeline(t *testing.T, pages map[string]string) *translate.Pipeline {
	t.Helper()

	translator := lexicon.New(preklad.DefaultDictionary())
	return &translate.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*preklad.SourceDocument, error) {
				body, ok := pages[url]
				if !ok {
					return nil, preklad.Errorf(preklad.ENETWORK, "connection refused")
				}
				return &preklad.SourceDocument{
					URL:         url,
					Body:        []byte(body),
					ContentType: "text/html; charset=utf-8",
					FetchedAt:   time.Now(),
				}, nil
			},
		},
		Parser:     goquery.NewParser(),
		Translator: translator,
		Walker:     goquery.NewWalker(translator),
		Links:      goquery.NewLinkRewriter(preklad.DefaultRules()),
		Collector: goquery.NewCollector(&mock.Downloader{
			DownloadFn: func(_ context.Context, url string) (*preklad.Asset, error) {
				return &preklad.Asset{URL: url, Body: []byte("img"), ContentType: "image/jpeg"}, nil
			},
		}),
		Converter: &mock.Converter{
			ConvertFn: func(string) (string, error) { return "md", nil },
		},
		NewStore: func(string) (preklad.OutputStore, error) {
			return mock.NewOutputStore(t.TempDir()), nil
		},
	}
}

func simplePage(title string) string {
	return `<html><head><title>` + title + `</title>
<meta name="description" content="Popis.">
</head><body><article><p>Obsah bez obrázkov.</p></article></body></html>`
}

func TestBatch_Process(t *testing.T) {
	t.Parallel()

	t.Run("FailedURLDoesNotStopTheBatch", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.sk/a": simplePage("A"),
			"https://example.sk/c": simplePage("C"),
		}
		runs := &runRecorder{}
		batch := &translate.Batch{
			Pipeline:    newBatchPipeline(t, pages),
			Runs:        runs,
			Concurrency: 2,
		}

		urls := []string{"https://example.sk/a", "https://example.sk/b", "https://example.sk/c"}
		report, err := batch.Process(context.Background(), urls, t.TempDir(), nil)
		require.NoError(t, err)

		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, 0, report.Skipped)

		// Items keep input order.
		assert.Equal(t, translate.ItemStatusOK, report.Items[0].Status)
		assert.Equal(t, translate.ItemStatusFailed, report.Items[1].Status)
		assert.Equal(t, "connection refused", report.Items[1].Error)
		assert.Equal(t, translate.ItemStatusOK, report.Items[2].Status)

		// Every attempt is recorded in run history.
		recorded := runs.all()
		require.Len(t, recorded, 3)
		statuses := map[string]string{}
		for _, r := range recorded {
			statuses[r.URL] = r.Status
		}
		assert.Equal(t, preklad.RunStatusOK, statuses["https://example.sk/a"])
		assert.Equal(t, preklad.RunStatusFailed, statuses["https://example.sk/b"])
	})

	t.Run("DuplicateURLsAreSkipped", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{"https://example.sk/a": simplePage("A")}
		batch := &translate.Batch{Pipeline: newBatchPipeline(t, pages)}

		urls := []string{"https://example.sk/a", "https://example.sk/a"}
		report, err := batch.Process(context.Background(), urls, t.TempDir(), nil)
		require.NoError(t, err)

		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 1, report.Skipped)
		assert.Equal(t, translate.ItemStatusOK, report.Items[0].Status)
		assert.Equal(t, translate.ItemStatusSkipped, report.Items[1].Status)
	})

	t.Run("ReportsProgress", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.sk/a": simplePage("A"),
			"https://example.sk/b": simplePage("B"),
		}
		batch := &translate.Batch{Pipeline: newBatchPipeline(t, pages), Concurrency: 1}

		var mu sync.Mutex
		counts := map[translate.ProgressType]int{}
		progress := func(event translate.ProgressEvent) {
			mu.Lock()
			counts[event.Type]++
			mu.Unlock()
		}

		_, err := batch.Process(context.Background(), []string{"https://example.sk/a", "https://example.sk/b"}, t.TempDir(), progress)
		require.NoError(t, err)

		assert.Equal(t, 1, counts[translate.ProgressStarted])
		assert.Equal(t, 2, counts[translate.ProgressCompleted])
		assert.Equal(t, 1, counts[translate.ProgressFinished])
	})

	t.Run("RespectsDomainRateLimit", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.sk/a": simplePage("A"),
			"https://example.sk/b": simplePage("B"),
			"https://example.sk/c": simplePage("C"),
		}
		batch := &translate.Batch{
			Pipeline:    newBatchPipeline(t, pages),
			Limiter:     translate.NewDomainLimiter(50),
			Concurrency: 3,
		}

		start := time.Now()
		report, err := batch.Process(context.Background(),
			[]string{"https://example.sk/a", "https://example.sk/b", "https://example.sk/c"},
			t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Succeeded)
		// 3 requests at 50 rps need at least two token waits.
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})
}

func TestReport_WriteFile(t *testing.T) {
	t.Parallel()

	report := &translate.Report{
		Total:     2,
		Succeeded: 1,
		Failed:    1,
		Items: []translate.ReportItem{
			{URL: "https://example.sk/a", Status: translate.ItemStatusOK, OutputDir: "/out/a"},
			{URL: "https://example.sk/b", Status: translate.ItemStatusFailed, Error: "connection refused"},
		},
		StartedAt:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC),
	}

	path := filepath.Join(t.TempDir(), "batch_report.json")
	require.NoError(t, report.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded translate.Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 2, decoded.Total)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "connection refused", decoded.Items[1].Error)

	assert.Contains(t, report.Summary(), "1 ok, 1 failed")
}

// runRecorder is a thread-safe in-memory RunService.
type runRecorder struct {
	mu   sync.Mutex
	runs []*preklad.Run
}

func (r *runRecorder) CreateRun(_ context.Context, run *preklad.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

func (r *runRecorder) FindRuns(_ context.Context, limit int) ([]*preklad.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, nil
}

func (r *runRecorder) all() []*preklad.Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*preklad.Run(nil), r.runs...)
}
