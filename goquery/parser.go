// Package goquery implements the markup-facing pipeline stages: article
// subtree isolation, text-node translation, link rewriting and image
// reference collection.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dkubicek/preklad"
	"golang.org/x/net/html/charset"
)

// containerSelectors is the subtree isolation chain, in descending
// specificity. The first selector with a non-empty match wins; when none
// match the whole document body is used.
var containerSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	"#content",
	".content",
	"main",
}

// Ensure Parser implements preklad.Parser at compile time.
var _ preklad.Parser = (*Parser)(nil)

// Parser decodes fetched markup into a traversable article tree and
// extracts page metadata.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the document honoring its declared or detected character
// encoding, isolates the article subtree and extracts metadata. Missing
// metadata fields are empty strings, never errors.
func (p *Parser) Parse(doc *preklad.SourceDocument) (*preklad.Article, error) {
	if len(bytes.TrimSpace(doc.Body)) == 0 {
		return nil, preklad.Errorf(preklad.EUNPARSABLE, "empty document body for %s", doc.URL)
	}

	reader, err := charset.NewReader(bytes.NewReader(doc.Body), doc.ContentType)
	if err != nil {
		return nil, preklad.Errorf(preklad.EUNPARSABLE, "decode %s: %v", doc.URL, err)
	}

	gq, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, preklad.Errorf(preklad.EUNPARSABLE, "parse markup from %s: %v", doc.URL, err)
	}

	base, err := url.Parse(doc.URL)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "invalid document URL %q: %v", doc.URL, err)
	}

	sel, container := selectContainer(gq)
	if sel.Length() == 0 {
		return nil, preklad.Errorf(preklad.EUNPARSABLE, "document from %s has no body", doc.URL)
	}

	meta := extractMetadata(gq, base)
	if meta.CoverImageURL == "" {
		// Best effort: fall back to the first content image.
		if src, ok := sel.Find("img[src]").First().Attr("src"); ok {
			meta.CoverImageURL = resolveURL(base, src)
		}
	}

	return &preklad.Article{
		URL:       doc.URL,
		Meta:      meta,
		Container: container,
		Node:      sel.Nodes[0],
	}, nil
}

// selectContainer evaluates the selector chain short-circuit and returns
// the matched selection with the selector that produced it.
func selectContainer(gq *goquery.Document) (*goquery.Selection, string) {
	for _, s := range containerSelectors {
		sel := gq.Find(s).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel, s
		}
	}
	return gq.Find("body").First(), "body"
}

// extractMetadata reads the standard head fields.
func extractMetadata(gq *goquery.Document, base *url.URL) preklad.Metadata {
	meta := preklad.Metadata{
		Title: strings.TrimSpace(gq.Find("title").First().Text()),
	}

	if desc, ok := gq.Find(`meta[name="description"]`).First().Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if author, ok := gq.Find(`meta[name="author"]`).First().Attr("content"); ok {
		meta.Author = strings.TrimSpace(author)
	}
	if keywords, ok := gq.Find(`meta[name="keywords"]`).First().Attr("content"); ok {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}
	if img, ok := gq.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		meta.CoverImageURL = resolveURL(base, img)
	}

	return meta
}

// resolveURL resolves a possibly relative reference against the document
// base URL. Returns an empty string when the reference cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
