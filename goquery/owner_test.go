package goquery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/sitebrief/goquery"
	"github.com/fwojciec/sitebrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOwner(t *testing.T, resolver *goquery.OwnerResolver, pageURL, html string) string {
	t.Helper()
	ext, err := goquery.NewExtractor(nil, resolver).ExtractHTML(context.Background(), pageURL, html)
	require.NoError(t, err)
	return ext.Owner
}

func TestOwnerResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("prefers footer over full page text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
	<p>Herausgeber: Alpha Verlag</p>
	<footer>Inhaber: Beta Shop</footer>
</body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(nil), "https://example.com", html)

		assert.Equal(t, "Inhaber: Beta Shop", owner)
	})

	t.Run("reads only the first footer", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
	<article><p>news</p><footer>Inhaber: Gamma Blog</footer></article>
	<footer>Inhaber: Beta Shop</footer>
</body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(nil), "https://example.com", html)

		assert.Equal(t, "Inhaber: Gamma Blog", owner)
	})

	t.Run("matches footer owner separated by non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><footer>Betreiber:&nbsp;Jane&nbsp;Doe GmbH</footer></body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(nil), "https://example.com", html)

		assert.Equal(t, "Betreiber:\u00a0Jane\u00a0Doe GmbH", owner)
	})

	t.Run("falls back to full page text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>this shop is run by Erika Musterfrau since last year</p></body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(nil), "https://example.com", html)

		assert.Equal(t, "Erika Musterfrau ", owner)
	})

	t.Run("returns empty owner when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>widgets</title></head><body><p>welcome to our shop. we sell widgets.</p></body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(nil), "https://example.com", html)

		assert.Empty(t, owner)
	})

	t.Run("prefers legal notice page over footer", func(t *testing.T) {
		t.Parallel()

		var fetched string
		hop := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched = url
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return `<html><body><p>Inhaber: Erika Musterfrau</p></body></html>`, nil
			},
		}
		html := `<html><body>
	<a href="https://example.com/impressum">Impressum</a>
	<footer>Inhaber: Beta Shop</footer>
</body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com", html)

		assert.Equal(t, "https://example.com/impressum", fetched)
		assert.Equal(t, "Inhaber: Erika Musterfrau", owner)
	})

	t.Run("bounds hop by its own timeout under a longer parent deadline", func(t *testing.T) {
		t.Parallel()

		var remaining time.Duration
		hop := &mock.Fetcher{
			FetchFn: func(ctx context.Context, _ string) (string, error) {
				deadline, ok := ctx.Deadline()
				require.True(t, ok)
				remaining = time.Until(deadline)
				return "", errors.New("not found")
			},
		}
		html := `<html><body><a href="https://example.com/impressum">Impressum</a></body></html>`

		ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
		defer cancel()
		_, err := goquery.NewExtractor(nil, goquery.NewOwnerResolver(hop)).ExtractHTML(ctx, "https://example.com", html)
		require.NoError(t, err)

		assert.LessOrEqual(t, remaining, goquery.DefaultHopTimeout)
		assert.Greater(t, remaining, time.Duration(0))
	})

	t.Run("applies WithHopTimeout", func(t *testing.T) {
		t.Parallel()

		var remaining time.Duration
		hop := &mock.Fetcher{
			FetchFn: func(ctx context.Context, _ string) (string, error) {
				deadline, ok := ctx.Deadline()
				require.True(t, ok)
				remaining = time.Until(deadline)
				return "", errors.New("not found")
			},
		}
		html := `<html><body><a href="https://example.com/legal">Legal</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop, goquery.WithHopTimeout(time.Second)), "https://example.com", html)

		assert.LessOrEqual(t, remaining, time.Second)
	})

	t.Run("swallows hop failure and falls back to footer", func(t *testing.T) {
		t.Parallel()

		hop := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		html := `<html><body>
	<a href="https://example.com/legal">Legal notice</a>
	<footer>Inhaber: Beta Shop</footer>
</body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com", html)

		assert.Equal(t, "Inhaber: Beta Shop", owner)
	})

	t.Run("tries candidates in document order and stops at first match", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		hop := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				if url == "https://example.com/contact" {
					return `<p>nothing here</p>`, nil
				}
				return `<p>Betreiber: Jane Doe GmbH</p>`, nil
			},
		}
		html := `<html><body>
	<a href="https://example.com/contact">Contact us</a>
	<a href="https://example.com/impressum">IMPRESSUM</a>
	<a href="https://example.com/legal">Legal</a>
</body></html>`

		owner := resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com", html)

		assert.Equal(t, []string{"https://example.com/contact", "https://example.com/impressum"}, fetched)
		assert.Equal(t, "Betreiber: Jane Doe GmbH", owner)
	})

	t.Run("skips in-page anchors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		hop := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls++
				return "", errors.New("unexpected")
			},
		}
		html := `<html><body><a href="#contact">contact</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com", html)

		assert.Zero(t, calls)
	})

	t.Run("concatenates relative href with base href", func(t *testing.T) {
		t.Parallel()

		var fetched string
		hop := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return "", errors.New("not found")
			},
		}
		html := `<html><head><base href="https://example.com/"></head><body><a href="impressum">Impressum</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com/shop", html)

		assert.Equal(t, "https://example.com/impressum", fetched)
	})

	t.Run("ignores base href for absolute links", func(t *testing.T) {
		t.Parallel()

		var fetched string
		hop := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return "", errors.New("not found")
			},
		}
		html := `<html><head><base href="https://cdn.example.com/"></head><body><a href="https://example.com/kontakt">Kontakt / Contact</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop, goquery.WithRelativeLinks()), "https://example.com/", html)

		assert.Equal(t, "https://example.com/kontakt", fetched)
	})

	t.Run("fetches relative href as written without base href", func(t *testing.T) {
		t.Parallel()

		var fetched string
		hop := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return "", errors.New("unsupported protocol scheme")
			},
		}
		html := `<html><body><a href="/impressum">Impressum</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop), "https://example.com/shop/", html)

		assert.Equal(t, "/impressum", fetched)
	})

	t.Run("resolves relative href against page URL when enabled", func(t *testing.T) {
		t.Parallel()

		var fetched string
		hop := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return "", errors.New("not found")
			},
		}
		html := `<html><body><a href="/impressum">Impressum</a></body></html>`

		resolveOwner(t, goquery.NewOwnerResolver(hop, goquery.WithRelativeLinks()), "https://example.com/shop/", html)

		assert.Equal(t, "https://example.com/impressum", fetched)
	})
}
