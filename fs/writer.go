// Package fs provides file-based persistence for generated summaries.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitebrief"
)

// DefaultSummaryPath is the well-known file the latest summary is written to.
const DefaultSummaryPath = "summary.md"

// Ensure SummaryWriter implements sitebrief.SummaryWriter at compile time.
var _ sitebrief.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter writes the latest summary to a single fixed file.
// Every write replaces the previous content.
type SummaryWriter struct {
	path string
}

// NewSummaryWriter creates a SummaryWriter for path. An empty path selects
// DefaultSummaryPath.
func NewSummaryWriter(path string) *SummaryWriter {
	if path == "" {
		path = DefaultSummaryPath
	}
	return &SummaryWriter{path: path}
}

// Path returns the file the writer writes to.
func (w *SummaryWriter) Path() string {
	return w.path
}

// WriteSummary writes markdown to the writer's file as UTF-8.
func (w *SummaryWriter) WriteSummary(ctx context.Context, markdown string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(w.path, []byte(markdown), 0644)
}
