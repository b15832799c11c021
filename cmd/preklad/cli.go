package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dkubicek/preklad"
	prekladhttp "github.com/dkubicek/preklad/http"
	"github.com/dkubicek/preklad/translate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Runs     preklad.RunService
	Sitemaps *prekladhttp.SitemapService
	Pipeline *translate.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Enable debug logging"`
	Quiet   bool          `short:"q" help:"Suppress logging"`
	Dict    string        `help:"YAML dictionary file layered over the built-in one" type:"existingfile"`
	Rules   string        `help:"YAML link rules file replacing the built-in rules" type:"existingfile"`
	Timeout time.Duration `default:"20s" help:"Per-request timeout"`
	Extract bool          `help:"Run a content extractor when no article container is found"`

	Translate TranslateCmd `cmd:"" help:"Translate a single article"`
	Batch     BatchCmd     `cmd:"" help:"Translate a list of articles"`
	History   HistoryCmd   `cmd:"" help:"Show recent translation runs"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Output string `short:"o" default:"preklady" help:"Output root directory"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Input       string  `arg:"" help:"URL list file, CSV file, or sitemap URL"`
	Output      string  `short:"o" default:"preklady" help:"Output root directory"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent article limit"`
	RPS         float64 `default:"2" help:"Max requests per second per domain"`
	Report      string  `help:"Write the batch report JSON to this path"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of runs to show"`
}
