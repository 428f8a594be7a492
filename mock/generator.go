package mock

import (
	"context"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.Generator = (*Generator)(nil)

// Generator is a mock implementation of sitebrief.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req sitebrief.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req sitebrief.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

var _ sitebrief.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of sitebrief.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, ext *sitebrief.Extraction, locale sitebrief.Locale) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, ext *sitebrief.Extraction, locale sitebrief.Locale) (string, error) {
	return s.SummarizeFn(ctx, ext, locale)
}
