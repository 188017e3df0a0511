package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// crawl
	Crawler *crawl.Crawler
	Runs    docqa.CrawlRunService
	Records docqa.RecordService

	// clean
	Input      docqa.DatasetReader
	OutputPath string
	Tokens     docqa.TokenCounter

	// Output receives the command's dataset.
	Output docqa.DatasetWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch and extraction to stderr"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a documentation site and save question/answer pairs as CSV"`
	Clean  CleanCmd  `cmd:"" help:"Normalize, filter and deduplicate a CSV dataset or an archived run"`
	Runs   RunsCmd   `cmd:"" help:"List crawl runs archived in a database"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived crawl run and its records"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	StartURL  string        `arg:"" name:"start-url" help:"URL to start crawling from"`
	Output    string        `arg:"" name:"output" type:"path" help:"CSV file to write"`
	MaxPages  int           `name:"max-pages" default:"100" help:"Maximum number of pages to visit"`
	MaxDepth  int           `name:"max-depth" default:"3" help:"Maximum link depth from the start URL"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `name:"user-agent" env:"DOCQA_USER_AGENT" help:"User-Agent header for requests"`
	DB        string        `name:"db" env:"DOCQA_DB" type:"path" help:"Also archive the run in this SQLite database"`
}

// CleanCmd is the "clean" subcommand.
// It reads either a CSV file or, with --run, an archived crawl run.
type CleanCmd struct {
	Input       string `arg:"" name:"input" optional:"" type:"path" help:"CSV dataset to clean"`
	DB          string `name:"db" env:"DOCQA_DB" type:"path" help:"SQLite database holding archived runs"`
	RunID       string `name:"run" placeholder:"ID" help:"Clean an archived run instead of a CSV file (requires --db)"`
	Output      string `short:"o" type:"path" help:"Output file (default: cleaned-<input> next to the input, or cleaned-<run id>.csv)"`
	CountTokens string `name:"count-tokens" placeholder:"MODEL" help:"Report the cleaned dataset's token count for a Gemini model"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	DB       string `name:"db" env:"DOCQA_DB" type:"path" required:"" help:"SQLite database holding archived runs"`
	StartURL string `name:"start-url" help:"Only list runs started from this URL"`
	Limit    int    `short:"n" default:"20" help:"Maximum number of runs to list"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Crawl run ID"`
	DB    string `name:"db" env:"DOCQA_DB" type:"path" required:"" help:"SQLite database holding archived runs"`
	Force bool   `short:"f" help:"Confirm deletion"`
}
