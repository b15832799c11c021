// Package mock provides hand-written mock implementations of the
// preklad service interfaces for tests.
package mock

import (
	"context"

	"github.com/dkubicek/preklad"
)

var _ preklad.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of preklad.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*preklad.SourceDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*preklad.SourceDocument, error) {
	return f.FetchFn(ctx, url)
}

var _ preklad.Parser = (*Parser)(nil)

// Parser is a mock implementation of preklad.Parser.
type Parser struct {
	ParseFn func(doc *preklad.SourceDocument) (*preklad.Article, error)
}

func (p *Parser) Parse(doc *preklad.SourceDocument) (*preklad.Article, error) {
	return p.ParseFn(doc)
}

var _ preklad.Translator = (*Translator)(nil)

// Translator is a mock implementation of preklad.Translator.
// Nil functions behave as identity, which keeps simple tests short.
type Translator struct {
	TranslateFn     func(text string) string
	RepairSpacingFn func(markup string) string
}

func (t *Translator) Translate(text string) string {
	if t.TranslateFn == nil {
		return text
	}
	return t.TranslateFn(text)
}

func (t *Translator) RepairSpacing(markup string) string {
	if t.RepairSpacingFn == nil {
		return markup
	}
	return t.RepairSpacingFn(markup)
}

var _ preklad.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of preklad.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) (*preklad.Asset, error)
}

func (d *Downloader) Download(ctx context.Context, url string) (*preklad.Asset, error) {
	return d.DownloadFn(ctx, url)
}

var _ preklad.Converter = (*Converter)(nil)

// Converter is a mock implementation of preklad.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ preklad.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of preklad.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (string, error)
}

func (e *Extractor) Extract(rawHTML string) (string, error) {
	return e.ExtractFn(rawHTML)
}

var _ preklad.RunService = (*RunService)(nil)

// RunService is a mock implementation of preklad.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *preklad.Run) error
	FindRunsFn  func(ctx context.Context, limit int) ([]*preklad.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *preklad.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*preklad.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
