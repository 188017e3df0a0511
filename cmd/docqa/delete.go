package main

import (
	"fmt"

	"github.com/fwojciec/docqa"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return docqa.Errorf(docqa.EINVALID, "use --force to confirm deletion")
	}

	n, err := deps.Records.CountRecords(deps.Ctx, c.ID)
	if err != nil {
		return err
	}

	if err := deps.Runs.DeleteCrawlRun(deps.Ctx, c.ID); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s (%d records)\n", c.ID, n)
	return nil
}
