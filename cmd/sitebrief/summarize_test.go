package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/sitebrief"
	main "github.com/fwojciec/sitebrief/cmd/sitebrief"
	"github.com/fwojciec/sitebrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_PrintsMarkdown(t *testing.T) {
	t.Parallel()

	var got *sitebrief.BriefRequest
	briefer := &mock.Briefer{
		BriefFn: func(_ context.Context, req *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
			got = req
			return &sitebrief.Brief{URL: "https://example.de", Locale: sitebrief.LocaleDE, Markdown: "## Zusammenfassung"}, nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  &bytes.Buffer{},
		Briefer: briefer,
	}

	cmd := &main.SummarizeCmd{URL: "example.de", Language: "de"}
	require.NoError(t, cmd.Run(deps))

	assert.Equal(t, "## Zusammenfassung\n", stdout.String())
	require.NotNil(t, got)
	assert.Equal(t, "example.de", got.URL)
	assert.Equal(t, "de", got.Language)
	assert.False(t, got.Persist)
}

func TestSummarizeCmd_SaveReportsPath(t *testing.T) {
	t.Parallel()

	briefer := &mock.Briefer{
		BriefFn: func(_ context.Context, req *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
			assert.True(t, req.Persist)
			return &sitebrief.Brief{Markdown: "summary"}, nil
		},
	}

	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  &bytes.Buffer{},
		Stderr:  stderr,
		Config:  &main.Config{SummaryPath: "out/summary.md"},
		Briefer: briefer,
	}

	cmd := &main.SummarizeCmd{URL: "https://example.com", Language: "en", Save: true}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stderr.String(), "Saved to out/summary.md")
}

func TestSummarizeCmd_PrintsErrorMessage(t *testing.T) {
	t.Parallel()

	briefer := &mock.Briefer{
		BriefFn: func(_ context.Context, _ *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
			return nil, sitebrief.Errorf(sitebrief.EFETCH, "failed to fetch https://example.com: timeout")
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Briefer: briefer,
	}

	err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

	require.Error(t, err)
	assert.Equal(t, sitebrief.EFETCH, sitebrief.ErrorCode(err))
	assert.Equal(t, "error: failed to fetch https://example.com: timeout\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestSummarizeCmd_HidesInternalErrors(t *testing.T) {
	t.Parallel()

	briefer := &mock.Briefer{
		BriefFn: func(_ context.Context, _ *sitebrief.BriefRequest) (*sitebrief.Brief, error) {
			return nil, errors.New("disk on fire")
		},
	}

	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  &bytes.Buffer{},
		Stderr:  stderr,
		Briefer: briefer,
	}

	err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

	require.Error(t, err)
	assert.Equal(t, "error: Internal error.\n", stderr.String())
}
