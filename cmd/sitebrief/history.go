package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/sitebrief"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := sitebrief.SummaryFilter{Limit: c.Limit}
	if c.URL != "" {
		url := sitebrief.NormalizeURL(c.URL)
		filter.URL = &url
	}

	summaries, err := deps.Summaries.FindSummaries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebrief.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries found. Use 'sitebrief summarize' to create one.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Locale, s.URL, s.Title)
	}

	return nil
}
