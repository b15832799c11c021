package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/dkubicek/preklad"
)

// Ensure LinkRewriter implements preklad.LinkRewriter at compile time.
var _ preklad.LinkRewriter = (*LinkRewriter)(nil)

// LinkRewriter substitutes classified internal link prefixes with their
// target-locale equivalents.
type LinkRewriter struct {
	rules *preklad.RuleSet
}

// NewLinkRewriter creates a LinkRewriter over the given rule set.
func NewLinkRewriter(rules *preklad.RuleSet) *LinkRewriter {
	return &LinkRewriter{rules: rules}
}

// RewriteLinks evaluates every anchor in the subtree against the rule
// set, first match wins. Off-domain anchors are left untouched so
// third-party links are never mangled. Query and fragment survive the
// rewrite. The software tag steers section-index anchors to the detected
// software's page. Returns the number of anchors rewritten.
func (lr *LinkRewriter) RewriteLinks(article *preklad.Article, software string) int {
	if article.Node == nil {
		return 0
	}
	base, err := url.Parse(article.URL)
	if err != nil {
		return 0
	}

	count := 0
	doc := goquery.NewDocumentFromNode(article.Node)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		u, err := url.Parse(href)
		if err != nil || u.Path == "" {
			return
		}
		// Scoping: only same-host absolute targets and site-relative
		// targets are candidates.
		if (u.IsAbs() || u.Host != "") && u.Host != base.Host {
			return
		}

		rewritten, _, ok := lr.rules.Rewrite(u.Path, software)
		if !ok {
			return
		}
		u.Path = rewritten
		sel.SetAttr("href", u.String())
		count++
	})
	return count
}
