package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/fs"
	"github.com/dkubicek/preklad/goquery"
	"github.com/dkubicek/preklad/htmltomarkdown"
	prekladhttp "github.com/dkubicek/preklad/http"
	"github.com/dkubicek/preklad/lexicon"
	prekladslog "github.com/dkubicek/preklad/slog"
	"github.com/dkubicek/preklad/sqlite"
	"github.com/dkubicek/preklad/trafilatura"
	"github.com/dkubicek/preklad/translate"
	"github.com/dkubicek/preklad/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Run history database path. Set before calling Run().
	DBPath string

	// SQLite database backing the run history.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RunService preklad.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("preklad"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'preklad --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if cli.Quiet {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PREKLAD_DB to use a different database path\n")
		return fmt.Errorf("failed to open run history at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.Runs = m.RunService
	deps.Sitemaps = prekladhttp.NewSitemapService(nil)

	if cmd == "translate" || cmd == "batch" {
		pipeline, err := buildPipeline(cli, deps.Logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", preklad.ErrorMessage(err))
			return err
		}
		deps.Pipeline = pipeline
	}

	return kongCtx.Run(deps)
}

// buildPipeline assembles the translation pipeline from the global and
// per-command flags.
func buildPipeline(cli *CLI, logger *slog.Logger) (*translate.Pipeline, error) {
	dict := preklad.DefaultDictionary()
	if cli.Dict != "" {
		overlay, err := yaml.LoadDictionary(cli.Dict)
		if err != nil {
			return nil, err
		}
		dict = dict.Merge(overlay)
	}

	rules := preklad.DefaultRules()
	if cli.Rules != "" {
		loaded, err := yaml.LoadRules(cli.Rules)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	translator := lexicon.New(dict)

	var fetcher preklad.Fetcher = prekladhttp.NewFetcher(prekladhttp.WithTimeout(timeout))
	fetcher = prekladslog.NewLoggingFetcher(fetcher, logger)

	var downloader preklad.Downloader = prekladhttp.NewDownloader(prekladhttp.WithDownloadTimeout(timeout))
	downloader = prekladslog.NewLoggingDownloader(downloader, logger)

	pipeline := &translate.Pipeline{
		Fetcher:    fetcher,
		Parser:     goquery.NewParser(),
		Translator: translator,
		Walker:     goquery.NewWalker(translator),
		Links:      goquery.NewLinkRewriter(rules),
		Collector:  goquery.NewCollector(downloader),
		Converter:  htmltomarkdown.NewConverter(),
		NewStore: func(outputDir string) (preklad.OutputStore, error) {
			return fs.NewRunDir(outputDir)
		},
		Logger: logger,
	}
	if cli.Extract {
		pipeline.Fallback = trafilatura.NewExtractor()
	}
	return pipeline, nil
}

func defaultDBPath() string {
	if path := os.Getenv("PREKLAD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "preklad.db"
	}
	dir := filepath.Join(home, ".preklad")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "preklad.db")
}

// defaultTimeout bounds a single page or asset request.
const defaultTimeout = 20 * time.Second
