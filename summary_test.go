package sitebrief_test

import (
	"testing"

	"github.com/fwojciec/sitebrief"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid summary", func(t *testing.T) {
		t.Parallel()

		s := &sitebrief.Summary{URL: "https://example.com", Markdown: "# Hi"}

		assert.NoError(t, s.Validate())
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		s := &sitebrief.Summary{Markdown: "# Hi"}

		assert.Equal(t, sitebrief.EINVALID, sitebrief.ErrorCode(s.Validate()))
	})

	t.Run("requires markdown", func(t *testing.T) {
		t.Parallel()

		s := &sitebrief.Summary{URL: "https://example.com"}

		assert.Equal(t, sitebrief.EINVALID, sitebrief.ErrorCode(s.Validate()))
	})
}
