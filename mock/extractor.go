package mock

import (
	"context"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitebrief.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*sitebrief.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*sitebrief.Extraction, error) {
	return e.ExtractFn(ctx, url)
}
