package mock

import (
	"context"

	"github.com/fwojciec/sitebrief"
)

var _ sitebrief.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of sitebrief.SummaryService.
type SummaryService struct {
	CreateSummaryFn   func(ctx context.Context, summary *sitebrief.Summary) error
	FindSummaryByIDFn func(ctx context.Context, id string) (*sitebrief.Summary, error)
	FindSummariesFn   func(ctx context.Context, filter sitebrief.SummaryFilter) ([]*sitebrief.Summary, error)
}

func (s *SummaryService) CreateSummary(ctx context.Context, summary *sitebrief.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*sitebrief.Summary, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter sitebrief.SummaryFilter) ([]*sitebrief.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

var _ sitebrief.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of sitebrief.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, markdown string) error
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, markdown string) error {
	return w.WriteSummaryFn(ctx, markdown)
}
