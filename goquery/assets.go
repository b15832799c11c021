package goquery

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dkubicek/preklad"
)

// Ensure Collector implements preklad.AssetCollector at compile time.
var _ preklad.AssetCollector = (*Collector)(nil)

// Collector downloads the images an article references and rewrites the
// in-tree references to local relative paths.
type Collector struct {
	downloader preklad.Downloader
}

// NewCollector creates a Collector using the given downloader.
func NewCollector(downloader preklad.Downloader) *Collector {
	return &Collector{downloader: downloader}
}

// Collect processes the cover image and every img reference in the
// subtree. Vector placeholder formats are skipped with a warning; a
// failed download leaves the original remote reference in place and adds
// a warning. Collect never fails the run.
func (c *Collector) Collect(ctx context.Context, article *preklad.Article, store preklad.OutputStore) ([]preklad.AssetRecord, []string) {
	var records []preklad.AssetRecord
	var warnings []string

	base, err := url.Parse(article.URL)
	if err != nil {
		return nil, []string{fmt.Sprintf("invalid base URL %q, skipping asset collection", article.URL)}
	}

	if cover := article.Meta.CoverImageURL; cover != "" {
		rec, warn := c.collectCover(ctx, cover, store)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	seq := 0
	doc := goquery.NewDocumentFromNode(article.Node)
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		abs := resolveURL(base, src)
		if abs == "" {
			warnings = append(warnings, fmt.Sprintf("unresolvable image reference %q", src))
			return
		}
		if reason := placeholderReason(abs, ""); reason != "" {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %s", abs, reason))
			return
		}

		asset, err := c.downloader.Download(ctx, abs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("image %s: %s", abs, preklad.ErrorMessage(err)))
			return
		}
		if reason := placeholderReason(abs, asset.ContentType); reason != "" {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %s", abs, reason))
			return
		}

		seq++
		relPath, err := store.SaveImage(remoteFilename(abs, asset.ContentType, seq), asset.Body)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("image %s: %s", abs, preklad.ErrorMessage(err)))
			return
		}

		sel.SetAttr("src", relPath)
		records = append(records, preklad.AssetRecord{
			OriginalURL: abs,
			LocalPath:   relPath,
			Filename:    path.Base(relPath),
			Kind:        preklad.AssetContent,
		})
	})

	return records, warnings
}

func (c *Collector) collectCover(ctx context.Context, coverURL string, store preklad.OutputStore) (*preklad.AssetRecord, string) {
	if reason := placeholderReason(coverURL, ""); reason != "" {
		return nil, fmt.Sprintf("skipped cover %s: %s", coverURL, reason)
	}

	asset, err := c.downloader.Download(ctx, coverURL)
	if err != nil {
		return nil, fmt.Sprintf("cover image %s: %s", coverURL, preklad.ErrorMessage(err))
	}
	if reason := placeholderReason(coverURL, asset.ContentType); reason != "" {
		return nil, fmt.Sprintf("skipped cover %s: %s", coverURL, reason)
	}

	relPath, err := store.SaveCover(remoteFilename(coverURL, asset.ContentType, 0), asset.Body)
	if err != nil {
		return nil, fmt.Sprintf("cover image %s: %s", coverURL, preklad.ErrorMessage(err))
	}

	return &preklad.AssetRecord{
		OriginalURL: coverURL,
		LocalPath:   relPath,
		Filename:    path.Base(relPath),
		Kind:        preklad.AssetCover,
	}, ""
}

// placeholderReason reports why a reference is a non-raster placeholder
// that should be skipped, or an empty string when it is downloadable.
func placeholderReason(rawURL, contentType string) string {
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "data:") {
		return "inline data URI placeholder"
	}
	if u, err := url.Parse(rawURL); err == nil && strings.HasSuffix(strings.ToLower(u.Path), ".svg") {
		return "vector placeholder format"
	}
	if strings.Contains(strings.ToLower(contentType), "svg") {
		return "vector placeholder format"
	}
	return ""
}

// remoteFilename derives a local filename from the remote URL, falling
// back to a sequence-numbered name with a content-type extension when
// the URL path carries none.
func remoteFilename(rawURL, contentType string, seq int) string {
	if u, err := url.Parse(rawURL); err == nil {
		name := path.Base(u.Path)
		if name != "" && name != "/" && name != "." && strings.Contains(name, ".") {
			return name
		}
	}
	return fmt.Sprintf("image_%d%s", seq, extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
