// Package translate orchestrates the article translation pipeline.
// It coordinates fetching, subtree isolation, lexical substitution, link
// rewriting, asset collection and output assembly.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/lexicon"
)

// Pipeline runs the translation of a single article. All stage fields
// are required except Fallback, which refines body-fallback parses, and
// Logger.
type Pipeline struct {
	Fetcher    preklad.Fetcher
	Parser     preklad.Parser
	Translator preklad.Translator
	Walker     preklad.Walker
	Links      preklad.LinkRewriter
	Collector  preklad.AssetCollector
	Converter  preklad.Converter
	Fallback   preklad.Extractor

	// NewStore creates the per-run output directory under outputDir.
	NewStore func(outputDir string) (preklad.OutputStore, error)

	Logger *slog.Logger
}

// Run translates the article at rawURL and assembles the output
// directory under outputDir. Recoverable issues are accumulated as
// warnings on the Result; only failures that leave nothing usable
// (fetch, parse, output directory creation, content write) return an
// error.
func (p *Pipeline) Run(ctx context.Context, rawURL, outputDir string) (*preklad.Result, error) {
	logger := p.logger()
	start := time.Now()

	doc, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := p.Parser.Parse(doc)
	if err != nil {
		return nil, err
	}

	var warnings []string

	// When no structural selector matched, the subtree is the whole
	// body, boilerplate included. Re-parse through the content
	// extractor when one is configured.
	if article.Container == "body" && p.Fallback != nil {
		article, warnings = p.refineBodyFallback(doc, article, warnings)
	}

	if article.Meta.Title == "" {
		warnings = append(warnings, "document has no title")
	}
	if article.Meta.Description == "" {
		warnings = append(warnings, "document has no meta description")
	}

	p.Walker.Walk(article)
	p.translateMetadata(article)

	tag, topic := lexicon.DetectTopic(article.Meta.Title, article.Text())
	rewritten := p.Links.RewriteLinks(article, tag)

	store, err := p.NewStore(outputDir)
	if err != nil {
		return nil, err
	}

	records, assetWarnings := p.Collector.Collect(ctx, article, store)
	warnings = append(warnings, assetWarnings...)

	coverPath := ""
	for _, rec := range records {
		if rec.Kind == preklad.AssetCover {
			coverPath = rec.LocalPath
			break
		}
	}

	markup, err := article.HTML()
	if err != nil {
		return nil, err
	}
	markup = p.Translator.RepairSpacing(markup)

	if err := store.WriteContent(markup); err != nil {
		return nil, err
	}

	if md, err := p.Converter.Convert(markup); err != nil {
		warnings = append(warnings, fmt.Sprintf("markdown rendition failed: %s", preklad.ErrorMessage(err)))
	} else if err := store.WriteMarkdown(md); err != nil {
		return nil, err
	}

	result := &preklad.Result{
		URL:            rawURL,
		OutputDir:      store.Path(),
		Meta:           article.Meta,
		Topic:          topic,
		CoverPath:      coverPath,
		Assets:         records,
		Warnings:       warnings,
		ContentHash:    fmt.Sprintf("%x", xxhash.Sum64(doc.Body)),
		RewrittenLinks: rewritten,
		CreatedAt:      time.Now().UTC(),
	}

	if err := store.WriteMetadata(result); err != nil {
		return nil, err
	}
	if err := store.WriteManifest(result); err != nil {
		return nil, err
	}
	if err := store.WriteReadme(result); err != nil {
		return nil, err
	}

	logger.Info("article translated",
		"url", rawURL,
		"output", result.OutputDir,
		"container", article.Container,
		"assets", len(records),
		"links", rewritten,
		"warnings", len(warnings),
		"duration", time.Since(start),
	)

	return result, nil
}

// refineBodyFallback runs the boilerplate extractor over the raw markup
// and re-parses its output. On any failure the original body-wide
// article is kept and a warning recorded.
func (p *Pipeline) refineBodyFallback(doc *preklad.SourceDocument, article *preklad.Article, warnings []string) (*preklad.Article, []string) {
	content, err := p.Fallback.Extract(string(doc.Body))
	if err != nil {
		return article, append(warnings, fmt.Sprintf("content extraction fallback failed: %s", preklad.ErrorMessage(err)))
	}

	refined, err := p.Parser.Parse(&preklad.SourceDocument{
		URL:         doc.URL,
		Body:        []byte(content),
		ContentType: "text/html; charset=utf-8",
		FetchedAt:   doc.FetchedAt,
	})
	if err != nil {
		return article, append(warnings, fmt.Sprintf("content extraction fallback failed: %s", preklad.ErrorMessage(err)))
	}

	// The extractor output has no head section; keep the metadata from
	// the original document.
	refined.Meta = article.Meta
	return refined, warnings
}

// translateMetadata applies lexical substitution to the prose metadata
// fields. The author name passes through untranslated.
func (p *Pipeline) translateMetadata(article *preklad.Article) {
	article.Meta.Title = p.Translator.Translate(article.Meta.Title)
	article.Meta.Description = p.Translator.Translate(article.Meta.Description)
	for i, kw := range article.Meta.Keywords {
		article.Meta.Keywords[i] = p.Translator.Translate(kw)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
