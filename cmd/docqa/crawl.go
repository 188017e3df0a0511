package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
	"github.com/fwojciec/docqa/sqlite"
)

// Run executes the crawl command.
//
// Records are written once the crawl ends. An interrupted crawl still
// saves what it harvested before returning the interruption error.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var run *docqa.CrawlRun
	if deps.Runs != nil {
		run = &docqa.CrawlRun{StartURL: c.StartURL, MaxPages: c.MaxPages, MaxDepth: c.MaxDepth}
		if err := deps.Runs.CreateCrawlRun(deps.Ctx, run); err != nil {
			return fmt.Errorf("archive crawl run: %w", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s (max %d pages, depth %d)\n", c.StartURL, c.MaxPages, c.MaxDepth)

	progress := func(event crawl.ProgressEvent) {
		if line := crawl.FormatProgress(event); line != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", line)
		}
	}

	result, crawlErr := deps.Crawler.Crawl(deps.Ctx, c.StartURL, c.MaxPages, c.MaxDepth, progress)
	if result == nil {
		return crawlErr
	}
	if crawlErr != nil {
		if !errors.Is(crawlErr, context.Canceled) && !errors.Is(crawlErr, context.DeadlineExceeded) {
			return crawlErr
		}
		fmt.Fprintf(deps.Stderr, "crawl interrupted, saving %d pairs harvested so far\n", len(result.Records))
	}

	// Saving must survive the interruption that ended the crawl.
	ctx := context.WithoutCancel(deps.Ctx)

	if err := deps.Output.WriteDataset(ctx, result.Records); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	if run != nil {
		if err := c.archive(ctx, deps, run, result); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pairs from %d pages (%d failed, %s) to %s\n",
		len(result.Records), result.Visited, result.Failed, crawl.FormatBytes(result.Bytes), c.Output)
	if run != nil {
		fmt.Fprintf(deps.Stdout, "Archived run %s\n", run.ID)
	}

	return crawlErr
}

func (c *CrawlCmd) archive(ctx context.Context, deps *Dependencies, run *docqa.CrawlRun, result *crawl.Result) error {
	if err := sqlite.NewRunDataset(deps.Records, run.ID).WriteDataset(ctx, result.Records); err != nil {
		return fmt.Errorf("archive records: %w", err)
	}
	records := len(result.Records)
	if _, err := deps.Runs.UpdateCrawlRun(ctx, run.ID, docqa.CrawlRunUpdate{
		Visited: &result.Visited,
		Failed:  &result.Failed,
		Records: &records,
	}); err != nil {
		return fmt.Errorf("archive crawl run: %w", err)
	}
	return nil
}
