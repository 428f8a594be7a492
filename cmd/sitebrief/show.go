package main

import (
	"fmt"

	"github.com/fwojciec/sitebrief"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	summary, err := deps.Summaries.FindSummaryByID(deps.Ctx, c.ID)
	if err != nil {
		if sitebrief.ErrorCode(err) == sitebrief.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: summary %q not found. Use 'sitebrief history' to list summaries.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary.Markdown)
	return nil
}
