package goquery

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitebrief"
)

// DefaultHopTimeout bounds the legal-notice sub-fetch independently of the
// primary page fetch.
const DefaultHopTimeout = 5 * time.Second

// legalKeywords select anchors that likely point at a legal notice.
var legalKeywords = []string{"impressum", "legal", "contact"}

// OwnerResolver finds a best-effort owner attribution for a parsed page.
//
// Strategies run in order and the first non-empty result wins:
// a one-hop fetch of legal-notice links, the footer text, and finally the
// whole page text.
type OwnerResolver struct {
	fetcher       sitebrief.Fetcher
	timeout       time.Duration
	relativeLinks bool
}

// OwnerOption configures an OwnerResolver.
type OwnerOption func(*OwnerResolver)

// WithHopTimeout sets the timeout for each legal-notice sub-fetch.
func WithHopTimeout(d time.Duration) OwnerOption {
	return func(r *OwnerResolver) {
		r.timeout = d
	}
}

// WithRelativeLinks resolves relative legal-notice hrefs against the page
// URL when the document has no <base href>. Without it such hrefs are
// fetched as written.
func WithRelativeLinks() OwnerOption {
	return func(r *OwnerResolver) {
		r.relativeLinks = true
	}
}

// NewOwnerResolver creates an OwnerResolver that uses fetcher for the
// legal-notice hop. A nil fetcher disables the hop.
func NewOwnerResolver(fetcher sitebrief.Fetcher, opts ...OwnerOption) *OwnerResolver {
	r := &OwnerResolver{
		fetcher: fetcher,
		timeout: DefaultHopTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the owner for doc, or an empty string. It never fails:
// sub-fetch and parse errors disqualify the candidate and resolution moves
// on. doc must not have been stripped yet.
func (r *OwnerResolver) Resolve(ctx context.Context, pageURL string, doc *goquery.Document) string {
	footer := plainText(doc.Find("footer").First())
	page := plainText(doc.Selection)

	return sitebrief.ResolveOwner(ctx,
		r.legalNoticeStrategy(pageURL, doc),
		sitebrief.TextStrategy(footer),
		sitebrief.TextStrategy(page),
	)
}

func (r *OwnerResolver) legalNoticeStrategy(pageURL string, doc *goquery.Document) sitebrief.OwnerStrategy {
	return func(ctx context.Context) string {
		if r.fetcher == nil {
			return ""
		}
		base, _ := doc.Find("base[href]").First().Attr("href")

		var owner string
		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if !isLegalAnchor(a.Text()) {
				return true
			}
			href, _ := a.Attr("href")
			href = strings.TrimSpace(href)
			if href == "" || strings.HasPrefix(href, "#") {
				return true
			}
			owner = r.probe(ctx, r.resolveHref(pageURL, base, href))
			return owner == ""
		})
		return owner
	}
}

func (r *OwnerResolver) resolveHref(pageURL, base, href string) string {
	switch {
	case strings.HasPrefix(href, "http"):
		return href
	case base != "":
		return base + href
	case r.relativeLinks:
		page, err := url.Parse(pageURL)
		if err != nil {
			return href
		}
		ref, err := url.Parse(href)
		if err != nil {
			return href
		}
		return page.ResolveReference(ref).String()
	default:
		return href
	}
}

// probe fetches a legal-notice candidate and matches its plain text.
func (r *OwnerResolver) probe(ctx context.Context, target string) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := r.fetcher.Fetch(ctx, target)
	if err != nil {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return sitebrief.MatchOwner(plainText(doc.Selection))
}

func isLegalAnchor(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range legalKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
