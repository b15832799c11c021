package preklad

import (
	"context"
	"time"
)

// SourceDocument holds the raw markup fetched for a URL. It is immutable
// once fetched: the Parser consumes it and it is then discarded.
type SourceDocument struct {
	// URL is the final URL after redirects, used as the base for
	// resolving relative references.
	URL string

	// Body is the raw response body. Character decoding is deferred to
	// the Parser, which honors the declared or detected encoding.
	Body []byte

	// ContentType is the Content-Type response header, if any.
	ContentType string

	// FetchedAt records when the document was retrieved.
	FetchedAt time.Time
}

// Fetcher retrieves raw markup for a URL over HTTP.
//
// Implementations enforce a bounded timeout and a redirect hop cap and
// surface failures as coded errors: ENETWORK for connection failures,
// EHTTPSTATUS for non-success status codes, ETIMEOUT when the bounded wait
// elapses. No retries happen at this layer; retry policy belongs to the
// batch orchestrator.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*SourceDocument, error)
}
