package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/calibre"
	"github.com/fwojciec/novelfetch/epub"
	"github.com/fwojciec/novelfetch/fs"
	"github.com/fwojciec/novelfetch/goquery"
	"github.com/fwojciec/novelfetch/htmltomarkdown"
	nfhttp "github.com/fwojciec/novelfetch/http"
	"github.com/fwojciec/novelfetch/rod"
	"github.com/fwojciec/novelfetch/scrape"
	nfslog "github.com/fwojciec/novelfetch/slog"
	"github.com/fwojciec/novelfetch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads environment variables. Set before calling Run().
	Getenv func(string) string

	// Config overrides the configuration file when set.
	Config *Config

	// SQLite database used by the library commands.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the
	// implementations Run would construct.
	Novels  novelfetch.NovelService
	Scraper novelfetch.NovelScraper
	Ebooks  novelfetch.EbookConverter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, FormatError(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("novelfetch"),
		kong.Description("Scrape Honeyfeed novels and convert them to e-books"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return novelfetch.Errorf(novelfetch.EINVALID, "no command specified. Run 'novelfetch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return novelfetch.Errorf(novelfetch.EINVALID, "%v", err)
	}

	cfg, err := m.loadConfig()
	if err != nil {
		return err
	}

	var flags *ScrapeFlags
	var needDB bool
	switch kongCtx.Selected().Name {
	case "fetch":
		flags = &cli.Fetch.ScrapeFlags
		needDB = cli.Fetch.Save
	case "convert":
		flags = &cli.Convert.ScrapeFlags
		if cli.Convert.DataDir != "" {
			cfg.DataDir = cli.Convert.DataDir
		}
	default:
		needDB = true
	}

	level := slog.LevelInfo
	if flags != nil && flags.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Markdown = htmltomarkdown.NewConverter()

	if needDB {
		if err := m.openNovels(cfg, deps); err != nil {
			fmt.Fprintf(stderr, "Hint: Set %s to use a different database path\n", DBEnv)
			return err
		}
		defer m.Close()
	}

	if flags != nil {
		scraper, closeFn, err := m.newScraper(*flags, cfg, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		deps.Scraper = scraper
	}

	if kongCtx.Selected().Name == "convert" {
		deps.Store = fs.NewStore(cfg.DataDir)
		deps.Books = epub.NewWriter()
		deps.Ebooks = m.Ebooks
		if deps.Ebooks == nil {
			var opts []calibre.Option
			if cfg.EbookConvert != "" {
				opts = append(opts, calibre.WithExecutable(cfg.EbookConvert))
			}
			deps.Ebooks = calibre.NewConverter(opts...)
		}
		if flags.Verbose {
			deps.Ebooks = nfslog.NewLoggingEbookConverter(deps.Ebooks, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// loadConfig returns the configuration with environment and built-in
// defaults applied.
func (m *Main) loadConfig() (Config, error) {
	if m.Config != nil {
		return m.Config.withDefaults(m.Getenv), nil
	}

	path, required := configPath(m.Getenv)
	if path == "" {
		return Config{}.withDefaults(m.Getenv), nil
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(m.Getenv), nil
}

// openNovels wires the local library into deps.
func (m *Main) openNovels(cfg Config, deps *Dependencies) error {
	if m.Novels != nil {
		deps.Novels = m.Novels
		return nil
	}

	if cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	deps.Novels = nfslog.NewLoggingNovelService(sqlite.NewNovelService(m.DB), deps.Logger)
	return nil
}

// newScraper builds the scraper selected by flags. The returned function
// releases the fetcher.
func (m *Main) newScraper(flags ScrapeFlags, cfg Config, logger *slog.Logger, stderr io.Writer) (novelfetch.NovelScraper, func() error, error) {
	if m.Scraper != nil {
		return m.Scraper, func() error { return nil }, nil
	}

	fallback, err := flags.FallbackExtractor()
	if err != nil {
		return nil, nil, err
	}

	timeout := flags.Timeout
	if timeout == 0 {
		timeout = cfg.Timeout
	}
	concurrency := flags.Concurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	var fetcher novelfetch.Fetcher
	if flags.Browser {
		var opts []rod.Option
		if timeout > 0 {
			opts = append(opts, rod.WithFetchTimeout(timeout))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		var opts []nfhttp.Option
		if timeout > 0 {
			opts = append(opts, nfhttp.WithTimeout(timeout))
		}
		fetcher = nfhttp.NewFetcher(opts...)
	}
	if flags.Verbose {
		fetcher = nfslog.NewLoggingFetcher(fetcher, logger)
	}

	parserOpts := []goquery.Option{goquery.WithBaseURL(cfg.BaseURL)}
	if fallback != nil {
		parserOpts = append(parserOpts, goquery.WithFallbackExtractor(fallback))
	}

	var scraper novelfetch.NovelScraper = &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(parserOpts...),
		Logger:      logger,
		BaseURL:     cfg.BaseURL,
		Concurrency: concurrency,
		Progress:    progressPrinter(stderr),
	}
	if flags.Verbose {
		scraper = nfslog.NewLoggingScraper(scraper, logger)
	}

	return scraper, fetcher.Close, nil
}

// progressPrinter reports chapter progress in place on w.
func progressPrinter(w io.Writer) scrape.ProgressFunc {
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(w, "  Found %d chapters\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(w, "\r[%d/%d] %s", event.Completed, event.Total, scrape.TruncateURL(event.URL, 40))
		case scrape.ProgressFailed:
			fmt.Fprintf(w, "\r  skip chapter %d %s: %v\n", event.Number, event.URL, event.Error)
		case scrape.ProgressFinished:
			fmt.Fprintf(w, "\r%80s\r", "")
		}
	}
}

// FormatError renders err for the terminal as "error (<code>): <message>".
// Errors from outside the application keep their full text.
func FormatError(err error) string {
	var e *novelfetch.Error
	if errors.As(err, &e) {
		return fmt.Sprintf("error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("error (%s): %v", novelfetch.EINTERNAL, err)
}
