package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitebrief"
)

// Ensure LoggingBriefer implements sitebrief.Briefer.
var _ sitebrief.Briefer = (*LoggingBriefer)(nil)

// LoggingBriefer wraps a Briefer with logging.
type LoggingBriefer struct {
	next   sitebrief.Briefer
	logger *slog.Logger
}

// NewLoggingBriefer creates a new LoggingBriefer.
func NewLoggingBriefer(next sitebrief.Briefer, logger *slog.Logger) *LoggingBriefer {
	return &LoggingBriefer{next: next, logger: logger}
}

// Brief delegates to the wrapped briefer and logs the request outcome.
func (b *LoggingBriefer) Brief(ctx context.Context, req *sitebrief.BriefRequest) (brief *sitebrief.Brief, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.URL,
			"language", req.Language,
			"persist", req.Persist,
			"duration", time.Since(begin),
		}
		if brief != nil {
			attrs = append(attrs,
				"locale", brief.Locale,
				"owner", brief.Extraction != nil && brief.Extraction.Owner != "",
				"bytes", len(brief.Markdown),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", sitebrief.ErrorCode(err), "err", err)
			b.logger.Error("brief", attrs...)
			return
		}
		b.logger.Info("brief", attrs...)
	}(time.Now())
	return b.next.Brief(ctx, req)
}
