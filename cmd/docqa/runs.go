package main

import (
	"fmt"

	"github.com/fwojciec/docqa"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := docqa.CrawlRunFilter{Limit: c.Limit}
	if c.StartURL != "" {
		filter.StartURL = &c.StartURL
	}

	runs, err := deps.Runs.FindCrawlRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl runs found. Use 'docqa crawl --db' to archive one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d pages, %d failed, %d pairs\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.StartURL, r.Visited, r.Failed, r.Records)
	}

	return nil
}
