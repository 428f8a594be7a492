// Package summarize orchestrates the sitebrief pipeline: it builds prompts,
// calls the language model with retries and ties extraction, summarization
// and persistence together.
package summarize

import (
	"context"
	"time"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.Summarizer = (*Summarizer)(nil)

// Summarizer implements sitebrief.Summarizer on top of a Generator.
type Summarizer struct {
	Generator sitebrief.Generator

	// RetryDelays are slept between attempts; len(RetryDelays)+1 calls are
	// made in total. Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logger, if set, is called before every retry.
	Logger LogFunc
}

// Summarize builds the localized prompt for ext and asks the Generator for
// a Markdown summary. The reply is returned unmodified.
func (s *Summarizer) Summarize(ctx context.Context, ext *sitebrief.Extraction, locale sitebrief.Locale) (string, error) {
	if ext == nil {
		ext = &sitebrief.Extraction{}
	}
	prompt := sitebrief.BuildPrompt(ext, locale)
	req := sitebrief.GenerateRequest{
		System:      prompt.System,
		User:        prompt.User,
		Temperature: sitebrief.DefaultTemperature,
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markdown, err := s.Generator.Generate(ctx, req)
		if err == nil {
			return markdown, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if s.Logger != nil {
			s.Logger("retry summary (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", &sitebrief.SummaryError{Attempts: attempt + 1, Err: ctx.Err()}
		case <-time.After(delays[attempt]):
		}
	}

	return "", &sitebrief.SummaryError{Attempts: maxAttempts, Err: lastErr}
}
