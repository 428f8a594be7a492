package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitebrief/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryWriter_WriteSummary(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown to the configured path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.md")
		w := fs.NewSummaryWriter(path)

		err := w.WriteSummary(context.Background(), "### 👤 **Betreiber**\nJane Doe GmbH – Müller")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "### 👤 **Betreiber**\nJane Doe GmbH – Müller", string(content))
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.md")
		w := fs.NewSummaryWriter(path)

		require.NoError(t, w.WriteSummary(context.Background(), "first summary that is longer"))
		require.NoError(t, w.WriteSummary(context.Background(), "second"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "latest", "summary.md")
		w := fs.NewSummaryWriter(path)

		require.NoError(t, w.WriteSummary(context.Background(), "# x"))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("does not write when context is canceled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.md")
		w := fs.NewSummaryWriter(path)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.WriteSummary(ctx, "# x")

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestNewSummaryWriter_DefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fs.DefaultSummaryPath, fs.NewSummaryWriter("").Path())
	assert.Equal(t, "summary.md", fs.DefaultSummaryPath)
}
