package sitebrief

import (
	"context"
	"strings"
)

// BriefRequest asks for a summary of a single URL.
type BriefRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"`
	Persist  bool   `json:"persist"`
}

// Validate returns an error if the request is missing required fields.
func (r *BriefRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "URL is required")
	}
	return nil
}

// Brief is the result of summarizing a URL.
type Brief struct {
	URL        string
	Locale     Locale
	Extraction *Extraction
	Markdown   string
}

// Briefer runs the whole pipeline for one URL: fetch, extract, resolve the
// owner, summarize and optionally persist.
type Briefer interface {
	// Brief summarizes the page named by req.
	// Returns EINVALID if no URL is given, EFETCH if the page cannot be
	// loaded and ESUMMARY if the language model fails.
	Brief(ctx context.Context, req *BriefRequest) (*Brief, error)
}
