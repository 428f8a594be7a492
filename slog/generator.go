package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitebrief"
)

// Ensure LoggingGenerator implements sitebrief.Generator.
var _ sitebrief.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and replies are
// not logged, only their sizes.
type LoggingGenerator struct {
	next   sitebrief.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next sitebrief.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, req sitebrief.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_chars", len([]rune(req.User)),
			"reply_chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
