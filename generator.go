package sitebrief

import "context"

// GenerateRequest is a single language model call.
type GenerateRequest struct {
	System      string
	User        string
	Temperature float64
}

// Generator produces text with a language model.
type Generator interface {
	// Generate returns the model's reply to the request, unmodified.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Summarizer turns extracted page content into a Markdown summary.
type Summarizer interface {
	// Summarize returns a Markdown summary of ext written in locale.
	// Returns a *SummaryError when the language model keeps failing.
	Summarize(ctx context.Context, ext *Extraction, locale Locale) (string, error)
}
