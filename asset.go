package preklad

import "context"

// AssetKind distinguishes the cover image from in-content images.
type AssetKind string

// AssetKind values.
const (
	AssetCover   AssetKind = "cover"
	AssetContent AssetKind = "content"
)

// AssetRecord describes one successfully downloaded image.
// A failed download produces no record, only a warning.
type AssetRecord struct {
	OriginalURL string    `json:"originalUrl"`
	LocalPath   string    `json:"localPath"`
	Filename    string    `json:"filename"`
	Kind        AssetKind `json:"kind"`
}

// Asset is a downloaded image payload.
type Asset struct {
	URL         string
	Body        []byte
	ContentType string
}

// Downloader retrieves binary assets over HTTP with the same timeout and
// error semantics as Fetcher.
type Downloader interface {
	Download(ctx context.Context, url string) (*Asset, error)
}

// AssetCollector discovers image references in the article subtree plus
// the designated cover image, downloads each into the output store, and
// rewrites in-tree references to local relative paths. Per-asset failures
// are downgraded to warnings; a single failed image never aborts the run.
type AssetCollector interface {
	Collect(ctx context.Context, article *Article, store OutputStore) (records []AssetRecord, warnings []string)
}
