package preklad

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Metadata holds the fields extracted from a page's head section.
// Absent fields are empty strings, never errors.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Author      string   `json:"author"`

	// CoverImageURL is the absolute URL of the page's cover image:
	// the first open-graph image reference, else the first content image.
	CoverImageURL string `json:"coverImageUrl,omitempty"`
}

// Article is the isolated article subtree plus extracted metadata.
//
// The subtree is an ownership-exclusive, mutable node tree: the Walker,
// LinkRewriter and AssetCollector mutate it in place, sequentially, within
// a single pipeline run. It is never shared across runs.
type Article struct {
	// URL is the source document URL, the base for resolving relative
	// link and image references.
	URL string

	// Meta holds the extracted (and later translated) metadata.
	Meta Metadata

	// Container names the structural selector that matched during
	// subtree isolation, or "body" when the fallback was used.
	Container string

	// Node is the root of the isolated subtree.
	Node *html.Node
}

// HTML renders the inner content of the article subtree as markup text.
// The container element itself is not included, matching what a CMS
// editor expects to receive.
func (a *Article) HTML() (string, error) {
	if a.Node == nil {
		return "", Errorf(EINVALID, "article has no content")
	}
	var buf bytes.Buffer
	for c := a.Node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", Errorf(EINTERNAL, "render article content: %v", err)
		}
	}
	return buf.String(), nil
}

// Text returns the concatenated text content of the subtree.
// Used for topic detection, not for output.
func (a *Article) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if a.Node != nil {
		walk(a.Node)
	}
	return b.String()
}

// Parser parses a fetched document into a traversable article tree.
//
// Subtree isolation tries structural selectors in a fixed
// descending-specificity order; the first non-empty match wins, else the
// whole document body is used. Implementations fail with EUNPARSABLE only
// when the byte stream cannot be decoded as markup at all.
type Parser interface {
	Parse(doc *SourceDocument) (*Article, error)
}

// Walker applies lexical translation to every text-bearing node of the
// article subtree, in place, in document order.
type Walker interface {
	Walk(article *Article)
}

// LinkRewriter rewrites classified internal anchor targets in place and
// reports how many anchors were rewritten. The software tag, when not
// empty, directs section-index call-to-action anchors at the detected
// software's page.
type LinkRewriter interface {
	RewriteLinks(article *Article, software string) int
}

// Extractor strips boilerplate from raw markup and returns the main
// content as clean HTML. Used as an opt-in refinement when subtree
// isolation falls through to the whole document body.
type Extractor interface {
	Extract(rawHTML string) (contentHTML string, err error)
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
