package sitebrief

import (
	"context"
	"time"
)

// Summary is a stored record of a generated summary.
type Summary struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	Locale          Locale    `json:"locale"`
	Title           string    `json:"title"`
	Owner           string    `json:"owner"`
	MetaDescription string    `json:"metaDescription"`
	Markdown        string    `json:"markdown"`
	Text            string    `json:"text"`
	ContentHash     string    `json:"contentHash"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	if s.Markdown == "" {
		return Errorf(EINVALID, "summary markdown required")
	}
	return nil
}

// SummaryService represents a service for managing stored summaries.
type SummaryService interface {
	// CreateSummary stores a new summary. ID, ContentHash and CreatedAt are
	// set by the implementation.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByID retrieves a summary by ID.
	// Returns ENOTFOUND if summary does not exist.
	FindSummaryByID(ctx context.Context, id string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter, newest first.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	URL    *string `json:"url"`
	Locale *Locale `json:"locale"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SummaryWriter persists the Markdown of the latest summary.
type SummaryWriter interface {
	// WriteSummary writes markdown to the writer's fixed location,
	// replacing any previous content.
	WriteSummary(ctx context.Context, markdown string) error
}
