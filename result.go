package preklad

import (
	"context"
	"time"
)

// Result is the terminal artifact of a pipeline run, returned to any
// caller (CLI, batch driver). Immutable once constructed.
type Result struct {
	// URL is the source article URL.
	URL string `json:"url"`

	// OutputDir is the absolute path of the per-run output directory.
	OutputDir string `json:"outputDir"`

	// Meta holds the translated metadata.
	Meta Metadata `json:"metadata"`

	// Topic is the detected article topic label, empty when detection
	// found nothing.
	Topic string `json:"topic,omitempty"`

	// CoverPath is the run-relative path of the saved cover image,
	// empty when no cover was resolved.
	CoverPath string `json:"coverPath,omitempty"`

	// Assets lists the downloaded content and cover images.
	Assets []AssetRecord `json:"assets"`

	// Warnings lists recoverable issues (failed image download,
	// skipped placeholder format, missing metadata field).
	Warnings []string `json:"warnings"`

	// ContentHash is the xxhash of the fetched source markup.
	ContentHash string `json:"contentHash"`

	// RewrittenLinks counts anchors rewritten to target-locale paths.
	RewrittenLinks int `json:"rewrittenLinks"`

	// CreatedAt records when the run completed.
	CreatedAt time.Time `json:"createdAt"`
}

// OutputStore lays out a per-run output directory. Implementations
// guarantee the directory is unique per invocation so repeated runs
// against the same output root never clobber each other.
type OutputStore interface {
	// Path returns the absolute path of the run directory.
	Path() string

	// SaveImage writes a content image under images/ using a
	// collision-safe name derived from the given one, returning the
	// run-relative path.
	SaveImage(name string, body []byte) (relPath string, err error)

	// SaveCover writes the cover image at the run root as
	// header_image with the extension of the given name.
	SaveCover(name string, body []byte) (relPath string, err error)

	// WriteContent writes the translated article markup (content.html).
	WriteContent(html string) error

	// WriteMarkdown writes the Markdown rendition (content.md).
	WriteMarkdown(md string) error

	// WriteMetadata writes seo_metadata.txt and seo_metadata.json.
	WriteMetadata(res *Result) error

	// WriteManifest writes manifest.json listing the asset records.
	WriteManifest(res *Result) error

	// WriteReadme writes the human-readable run summary (README.txt).
	WriteReadme(res *Result) error
}

// Run is a persisted record of one pipeline invocation.
type Run struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	OutputDir   string    `json:"outputDir"`
	ContentHash string    `json:"contentHash"`
	Warnings    int       `json:"warnings"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Run status values.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// RunService persists and queries pipeline run history.
type RunService interface {
	// CreateRun records a completed or failed run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns the most recent runs, newest first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
