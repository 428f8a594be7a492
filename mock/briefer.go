package mock

import (
	"context"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.Briefer = (*Briefer)(nil)

// Briefer is a mock implementation of sitebrief.Briefer.
type Briefer struct {
	BriefFn func(ctx context.Context, req *sitebrief.BriefRequest) (*sitebrief.Brief, error)
}

func (b *Briefer) Brief(ctx context.Context, req *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
	return b.BriefFn(ctx, req)
}
