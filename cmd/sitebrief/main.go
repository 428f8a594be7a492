package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitebrief"
	"github.com/fwojciec/sitebrief/fs"
	"github.com/fwojciec/sitebrief/goquery"
	sbhttp "github.com/fwojciec/sitebrief/http"
	"github.com/fwojciec/sitebrief/rod"
	sbslog "github.com/fwojciec/sitebrief/slog"
	"github.com/fwojciec/sitebrief/sqlite"
	"github.com/fwojciec/sitebrief/summarize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is loaded from the environment by Run when nil.
	Config *Config

	// SQLite database used by the summary history.
	DB *sqlite.DB

	// Fetcher and Generator replace the configured implementations when
	// set. Used for end-to-end testing.
	Fetcher   sitebrief.Fetcher
	Generator sitebrief.Generator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("sitebrief"),
		kong.Description("Summarize web pages with a language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitebrief --help' to see available commands")
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

	if m.Config == nil {
		if m.Config, err = LoadConfig(); err != nil {
			return err
		}
	}
	deps.Config = m.Config
	deps.Logger = NewLogger(stderr, m.Config.LogLevel)

	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEBRIEF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()
	deps.Summaries = sqlite.NewSummaryService(m.DB)

	if cmd == "summarize" || cmd == "serve" {
		briefer, cleanup, err := m.newBriefer(ctx, deps.Summaries, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Briefer = briefer
	}

	return kongCtx.Run(deps)
}

// newBriefer wires the summarization pipeline. The returned cleanup releases
// the fetchers.
func (m *Main) newBriefer(ctx context.Context, summaries sitebrief.SummaryService, logger *slog.Logger, stderr io.Writer) (sitebrief.Briefer, func(), error) {
	cfg := m.Config

	gen := m.Generator
	if gen == nil {
		var err error
		if gen, err = NewGenerator(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITEBRIEF_PROVIDER and the matching API key\n")
			return nil, nil, err
		}
	}

	fetcher, hop := m.Fetcher, m.Fetcher
	if fetcher == nil {
		hop = sbhttp.NewFetcher(sbhttp.WithTimeout(sbhttp.HopFetchTimeout))
		if cfg.Browser {
			browser, err := rod.NewFetcher(rod.WithFetchTimeout(rod.DefaultFetchTimeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return nil, nil, fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browser
		} else {
			fetcher = sbhttp.NewFetcher()
		}
	}
	cleanup := func() {
		_ = fetcher.Close()
		if hop != fetcher {
			_ = hop.Close()
		}
	}

	var ownerOpts []goquery.OwnerOption
	if cfg.RelativeLinks {
		ownerOpts = append(ownerOpts, goquery.WithRelativeLinks())
	}
	owners := goquery.NewOwnerResolver(sbslog.NewLoggingFetcher(hop, logger), ownerOpts...)

	briefer := &summarize.Briefer{
		Extractor: goquery.NewExtractor(sbslog.NewLoggingFetcher(fetcher, logger), owners),
		Summarizer: &summarize.Summarizer{
			Generator: sbslog.NewLoggingGenerator(gen, logger),
			Logger: func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			},
		},
		Writer:    fs.NewSummaryWriter(cfg.SummaryPath),
		Summaries: summaries,
	}

	return sbslog.NewLoggingBriefer(briefer, logger), cleanup, nil
}
