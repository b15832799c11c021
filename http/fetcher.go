// Package http provides HTTP-based implementations of preklad.Fetcher and
// preklad.Downloader for retrieving article markup and image assets.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dkubicek/preklad"
)

// DefaultFetchTimeout bounds every request. The pipeline has no
// cancellation surface of its own, so this is the only safeguard against
// indefinite blocking.
const DefaultFetchTimeout = 20 * time.Second

// DefaultMaxRedirects caps redirect hops to avoid redirect loops.
const DefaultMaxRedirects = 5

// defaultUserAgent mimics a desktop browser; some article hosts refuse
// requests without one.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Ensure Fetcher implements preklad.Fetcher at compile time.
var _ preklad.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article markup over plain HTTP. It does not execute
// JavaScript; script-rendered pages are out of scope.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxRedirects int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    defaultUserAgent,
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.maxRedirects {
				return preklad.Errorf(preklad.ENETWORK, "stopped after %d redirects", f.maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the raw markup for the given URL. The returned
// document's URL is the final URL after redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*preklad.SourceDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, preklad.StatusErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(url, err)
	}

	return &preklad.SourceDocument{
		URL:         resp.Request.URL.String(),
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FetchedAt:   time.Now(),
	}, nil
}

// transportError maps transport failures onto coded application errors.
func transportError(url string, err error) error {
	var appErr *preklad.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return preklad.Errorf(preklad.ETIMEOUT, "timed out fetching %s", url)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return preklad.Errorf(preklad.ETIMEOUT, "timed out fetching %s", url)
	}

	return preklad.Errorf(preklad.ENETWORK, "fetch %s: %v", url, err)
}
