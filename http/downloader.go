package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dkubicek/preklad"
)

// maxAssetSize caps a single image download (32 MiB).
const maxAssetSize = 32 << 20

// Ensure Downloader implements preklad.Downloader at compile time.
var _ preklad.Downloader = (*Downloader)(nil)

// Downloader retrieves image assets with the same timeout and error
// semantics as Fetcher.
type Downloader struct {
	client    *http.Client
	userAgent string
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the per-download timeout.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.client.Timeout = d
	}
}

// NewDownloader creates a new asset Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// Download retrieves the asset at the given URL.
func (dl *Downloader) Download(ctx context.Context, url string) (*preklad.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "invalid asset URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", dl.userAgent)

	resp, err := dl.client.Do(req)
	if err != nil {
		return nil, transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, preklad.StatusErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, transportError(url, err)
	}

	return &preklad.Asset{
		URL:         url,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
