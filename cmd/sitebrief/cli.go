package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitebrief"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *Config
	Logger    *slog.Logger
	Briefer   sitebrief.Briefer
	Summaries sitebrief.SummaryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Summarize SummarizeCmd `cmd:"" help:"Summarize a web page"`
	Serve     ServeCmd     `cmd:"" help:"Serve the summarize endpoint over HTTP"`
	History   HistoryCmd   `cmd:"" help:"List previously generated summaries"`
	Show      ShowCmd      `cmd:"" help:"Print a stored summary"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL      string `arg:"" help:"Page URL (https:// is assumed when no scheme is given)"`
	Language string `short:"l" default:"en" help:"Summary language: en, de or pl"`
	Save     bool   `short:"s" help:"Also write the summary to SITEBRIEF_SUMMARY_PATH"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (defaults to :$PORT)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show summaries of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of summaries to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Summary ID"`
}
