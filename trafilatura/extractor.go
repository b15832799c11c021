// Package trafilatura provides boilerplate-stripping content extraction,
// used as an opt-in refinement when structural subtree isolation falls
// through to the whole document body.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/dkubicek/preklad"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements preklad.Extractor at compile time.
var _ preklad.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as markup.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", preklad.Errorf(preklad.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", preklad.Errorf(preklad.EUNPARSABLE, "extract main content: %v", err)
	}

	if result.ContentNode == nil {
		return "", preklad.Errorf(preklad.EUNPARSABLE, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return "", preklad.Errorf(preklad.EINTERNAL, "render extracted content: %v", err)
	}
	return buf.String(), nil
}
