package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
	"github.com/fwojciec/docqa/fs"
	"github.com/fwojciec/docqa/gemini"
	"github.com/fwojciec/docqa/goquery"
	dqhttp "github.com/fwojciec/docqa/http"
	"github.com/fwojciec/docqa/publicsuffix"
	dqslog "github.com/fwojciec/docqa/slog"
	"github.com/fwojciec/docqa/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	_ = m.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", errorText(err))
		os.Exit(1)
	}
}

// errorText returns the user-facing text of err. Application errors show
// their message only; anything else is shown in full.
func errorText(err error) string {
	if docqa.ErrorCode(err) == docqa.EINTERNAL {
		return err.Error()
	}
	return docqa.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// SQLite archive, opened only when --db is set.
	DB *sqlite.DB

	fetcher *dqhttp.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		_ = m.fetcher.Close()
	}
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
		kong.Name("docqa"),
		kong.Description("Harvest question/answer pairs from documentation sites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docqa --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := NewLogger(stderr, cli.Verbose)

	switch strings.Fields(kongCtx.Command())[0] {
	case "crawl":
		if err := m.wireCrawl(deps, &cli.Crawl, logger); err != nil {
			return err
		}
	case "clean":
		if err := m.wireClean(deps, &cli.Clean, logger); err != nil {
			return err
		}
	case "runs":
		if err := m.openDB(deps, cli.Runs.DB); err != nil {
			return err
		}
	case "delete":
		if err := m.openDB(deps, cli.Delete.DB); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// NewLogger returns a text logger on w. Only warnings and errors are shown
// unless verbose is set, which enables per-page debug lines.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (m *Main) wireCrawl(deps *Dependencies, cmd *CrawlCmd, logger *slog.Logger) error {
	opts := []dqhttp.Option{dqhttp.WithTimeout(cmd.Timeout)}
	if cmd.UserAgent != "" {
		opts = append(opts, dqhttp.WithUserAgent(cmd.UserAgent))
	}
	m.fetcher = dqhttp.NewFetcher(opts...)

	deps.Crawler = &crawl.Crawler{
		Fetcher:   dqslog.NewLoggingFetcher(m.fetcher, logger),
		Extractor: dqslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Links:     publicsuffix.NewNormalizer(),
	}
	deps.Output = dqslog.NewLoggingDatasetWriter(fs.NewDatasetFile(cmd.Output), cmd.Output, logger)

	if cmd.DB != "" {
		return m.openDB(deps, cmd.DB)
	}
	return nil
}

// openDB opens the archive at path and wires its services.
func (m *Main) openDB(deps *Dependencies, path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set DOCQA_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Runs = sqlite.NewCrawlRunService(m.DB)
	deps.Records = sqlite.NewRecordService(m.DB)
	return nil
}

func (m *Main) wireClean(deps *Dependencies, cmd *CleanCmd, logger *slog.Logger) error {
	output := cmd.Output
	switch {
	case cmd.RunID != "" && cmd.Input != "":
		return docqa.Errorf(docqa.EINVALID, "give either an input file or --run, not both")
	case cmd.RunID != "":
		if cmd.DB == "" {
			return docqa.Errorf(docqa.EINVALID, "--run requires --db or DOCQA_DB")
		}
		if err := m.openDB(deps, cmd.DB); err != nil {
			return err
		}
		deps.Input = sqlite.NewRunDataset(deps.Records, cmd.RunID)
		if output == "" {
			output = fs.CleanedPrefix + cmd.RunID + ".csv"
		}
	case cmd.Input != "":
		deps.Input = fs.NewDatasetFile(cmd.Input)
		if output == "" {
			output = fs.CleanedPath(cmd.Input)
		}
	default:
		return docqa.Errorf(docqa.EINVALID, "an input file or --run is required")
	}

	deps.OutputPath = output
	deps.Output = dqslog.NewLoggingDatasetWriter(fs.NewDatasetFile(output), output, logger)

	if cmd.CountTokens != "" {
		tokens, err := gemini.NewTokenCounter(cmd.CountTokens)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = tokens
	}
	return nil
}
