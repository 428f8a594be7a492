package summarize

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.Briefer = (*Briefer)(nil)

// Briefer runs the full pipeline for one URL.
type Briefer struct {
	Extractor  sitebrief.Extractor
	Summarizer sitebrief.Summarizer

	// Writer receives the Markdown when a request asks to persist it.
	Writer sitebrief.SummaryWriter

	// Summaries, if set, records every generated summary.
	Summaries sitebrief.SummaryService
}

// Brief validates req, extracts the page, summarizes it and applies the
// requested side effects.
func (b *Briefer) Brief(ctx context.Context, req *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	pageURL := sitebrief.NormalizeURL(req.URL)
	locale := sitebrief.ParseLocale(req.Language)

	ext, err := b.Extractor.Extract(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	markdown, err := b.Summarizer.Summarize(ctx, ext, locale)
	if err != nil {
		return nil, err
	}

	if req.Persist {
		if b.Writer == nil {
			return nil, sitebrief.Errorf(sitebrief.EINTERNAL, "summary persistence is not configured")
		}
		if err := b.Writer.WriteSummary(ctx, markdown); err != nil {
			return nil, fmt.Errorf("write summary: %w", err)
		}
	}

	if b.Summaries != nil {
		err := b.Summaries.CreateSummary(ctx, &sitebrief.Summary{
			URL:             pageURL,
			Locale:          locale,
			Title:           ext.Title,
			Owner:           ext.Owner,
			MetaDescription: ext.MetaDescription,
			Markdown:        markdown,
			Text:            ext.Text,
		})
		if err != nil {
			return nil, fmt.Errorf("record summary: %w", err)
		}
	}

	return &sitebrief.Brief{
		URL:        pageURL,
		Locale:     locale,
		Extraction: ext,
		Markdown:   markdown,
	}, nil
}
