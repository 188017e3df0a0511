package main

import (
	"fmt"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	source := c.Input
	if c.RunID != "" {
		run, err := deps.Runs.FindCrawlRunByID(deps.Ctx, c.RunID)
		if err != nil {
			return fmt.Errorf("find run %s: %w", c.RunID, err)
		}
		source = "run " + run.ID
		fmt.Fprintf(deps.Stdout, "Cleaning run %s of %s (%s)\n",
			run.ID, run.StartURL, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	records, err := deps.Input.ReadDataset(deps.Ctx)
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}

	cleaned, stats := docqa.CleanWithStats(records)

	if err := deps.Output.WriteDataset(deps.Ctx, cleaned); err != nil {
		return fmt.Errorf("write %s: %w", deps.OutputPath, err)
	}

	fmt.Fprintf(deps.Stdout, "Read %d records: dropped %d invalid, %d too short, %d duplicates\n",
		stats.Input, stats.Invalid, stats.TooShort, stats.Duplicates)
	fmt.Fprintf(deps.Stdout, "Saved %d records to %s\n", stats.Output, deps.OutputPath)

	if deps.Tokens != nil {
		tokens, err := deps.Tokens.CountTokens(deps.Ctx, cleaned)
		if err != nil {
			return fmt.Errorf("count tokens: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Dataset size: %s\n", crawl.FormatTokens(tokens))
	}

	return nil
}
