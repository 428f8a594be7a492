package main

import (
	"fmt"

	"github.com/fwojciec/sitebrief"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	brief, err := deps.Briefer.Brief(deps.Ctx, &sitebrief.BriefRequest{
		URL:      c.URL,
		Language: c.Language,
		Persist:  c.Save,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, brief.Markdown)
	if c.Save && deps.Config != nil {
		fmt.Fprintf(deps.Stderr, "Saved to %s\n", deps.Config.SummaryPath)
	}
	return nil
}
