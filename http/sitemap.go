package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/dkubicek/preklad"
)

// maxSitemapDepth bounds sitemap-index recursion.
const maxSitemapDepth = 3

// SitemapService reads article URLs from an XML sitemap, one of the
// accepted batch input formats. Both plain urlsets and sitemap indexes
// are supported; indexes are followed to a bounded depth.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, a client with the default fetch timeout is
// used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches the sitemap at sitemapURL and returns the page
// URLs it lists, in document order, deduplicated.
func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	var process func(u string, depth int) error
	process = func(u string, depth int) error {
		if depth > maxSitemapDepth {
			return nil
		}

		doc, err := s.fetchXML(ctx, u)
		if err != nil {
			return err
		}

		root := doc.Root()
		if root == nil {
			return preklad.Errorf(preklad.EUNPARSABLE, "sitemap %s has no root element", u)
		}

		switch root.Tag {
		case "urlset":
			for _, el := range root.SelectElements("url") {
				if loc := el.SelectElement("loc"); loc != nil {
					link := strings.TrimSpace(loc.Text())
					if link != "" && !seen[link] {
						seen[link] = true
						urls = append(urls, link)
					}
				}
			}
		case "sitemapindex":
			for _, el := range root.SelectElements("sitemap") {
				if loc := el.SelectElement("loc"); loc != nil {
					child := strings.TrimSpace(loc.Text())
					if child != "" {
						if err := process(child, depth+1); err != nil {
							return err
						}
					}
				}
			}
		default:
			return preklad.Errorf(preklad.EUNPARSABLE, "unexpected sitemap root element <%s> in %s", root.Tag, u)
		}
		return nil
	}

	if err := process(sitemapURL, 0); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *SitemapService) fetchXML(ctx context.Context, url string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "invalid sitemap URL %q: %v", url, err)
	}

	resp, err := s.client.Do(req)
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

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, preklad.Errorf(preklad.EUNPARSABLE, "parse sitemap %s: %v", url, err)
	}
	return doc, nil
}
