package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/navdoc"
	"github.com/fwojciec/navdoc/crawl"
	"github.com/fwojciec/navdoc/fs"
	"github.com/fwojciec/navdoc/goquery"
	navhttp "github.com/fwojciec/navdoc/http"
	navslog "github.com/fwojciec/navdoc/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("navdoc"),
		kong.Description("Export a documentation site's Markdown pages into a single file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	httpOpts := []navhttp.Option{navhttp.WithTimeout(cfg.Timeout)}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return err
		}
		httpOpts = append(httpOpts, navhttp.WithProxy(proxy))
	}

	var fetcher navdoc.Fetcher = navhttp.NewFetcher(httpOpts...)
	defer fetcher.Close()
	if logger != nil {
		fetcher = navslog.NewLoggingFetcher(fetcher, logger)
	}

	var source navdoc.NavigationSource = goquery.NewNavigationSource(fetcher)
	if logger != nil {
		source = navslog.NewLoggingNavigationSource(source, logger)
	}

	fetchOpts := []crawl.FetcherOption{
		crawl.WithRetryDelays([]time.Duration{cfg.RetryDelay}),
		crawl.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(stdout, "\n%s\n", fmt.Sprintf(format, args...))
		}),
	}
	if cfg.RequestsPerSecond > 0 {
		fetchOpts = append(fetchOpts, crawl.WithRateLimiter(crawl.NewDomainLimiter(cfg.RequestsPerSecond)))
	}

	store := fs.NewExportFile(cfg.OutputPath)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Source:  source,
		Fetcher: crawl.NewSequentialFetcher(fetcher, fetchOpts...),
		Store:   store,
	}

	cmd := &ExportCmd{
		Config:  cfg,
		Preview: cli.Preview,
	}

	if err := cmd.Run(deps); err != nil {
		return err
	}

	if logger != nil && !cli.Preview {
		logger.Info("export written",
			"path", store.Path(),
			"pages", store.Pages(),
			"checksum", store.Checksum(),
		)
	}
	return nil
}
