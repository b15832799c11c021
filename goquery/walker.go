package goquery

import (
	"strings"

	"github.com/dkubicek/preklad"
	"golang.org/x/net/html"
)

// skippedTags are element subtrees whose contents must never be
// translated. Preformatted and code regions keep their exact spacing;
// script and style contents are not prose.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"pre":      true,
	"code":     true,
	"noscript": true,
	"textarea": true,
	"iframe":   true,
}

// translatedAttrs is the allow-list of attributes carrying prose.
// href and src are structural and belong to the link rewriter and asset
// collector respectively.
var translatedAttrs = []string{"alt", "title", "placeholder"}

// Ensure Walker implements preklad.Walker at compile time.
var _ preklad.Walker = (*Walker)(nil)

// Walker applies lexical translation to the article subtree in place.
type Walker struct {
	translator preklad.Translator
}

// NewWalker creates a Walker using the given translator.
func NewWalker(translator preklad.Translator) *Walker {
	return &Walker{translator: translator}
}

// Walk visits every text-bearing node in document order exactly once,
// replacing text content and allow-listed attribute values with their
// translations. No nodes are created or removed.
func (w *Walker) Walk(article *preklad.Article) {
	if article.Node == nil {
		return
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skippedTags[n.Data] {
				return
			}
			for i := range n.Attr {
				if !isTranslatedAttr(n.Attr[i].Key) || n.Attr[i].Val == "" {
					continue
				}
				n.Attr[i].Val = w.translator.Translate(n.Attr[i].Val)
			}
		}
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			n.Data = w.translator.Translate(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(article.Node)
}

func isTranslatedAttr(key string) bool {
	for _, name := range translatedAttrs {
		if key == name {
			return true
		}
	}
	return false
}
