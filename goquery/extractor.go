package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitebrief"
)

// strippedSelector lists elements removed before computing visible text.
const strippedSelector = "script, style, img, nav, footer, header"

var _ sitebrief.Extractor = (*Extractor)(nil)

// Extractor fetches pages and extracts their text, title, meta description
// and owner.
type Extractor struct {
	fetcher sitebrief.Fetcher
	owners  *OwnerResolver
}

// NewExtractor creates an Extractor. owners may be nil, in which case no
// owner is resolved.
func NewExtractor(fetcher sitebrief.Fetcher, owners *OwnerResolver) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		owners:  owners,
	}
}

// Extract fetches the page at rawURL and extracts its content.
// Any failure to retrieve the page is reported as EFETCH.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*sitebrief.Extraction, error) {
	pageURL := sitebrief.NormalizeURL(rawURL)

	body, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, sitebrief.Errorf(sitebrief.EFETCH, "failed to fetch %s: %v", pageURL, err)
	}

	return e.ExtractHTML(ctx, pageURL, body)
}

// ExtractHTML extracts content from HTML already retrieved from pageURL.
// The owner is resolved on the full document before script, style, img,
// nav, footer and header elements are removed for the visible text.
func (e *Extractor) ExtractHTML(ctx context.Context, pageURL, body string) (*sitebrief.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, sitebrief.Errorf(sitebrief.EFETCH, "failed to parse %s: %v", pageURL, err)
	}

	ext := &sitebrief.Extraction{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		ext.MetaDescription = strings.TrimSpace(content)
	}
	if e.owners != nil {
		ext.Owner = e.owners.Resolve(ctx, pageURL, doc)
	}

	doc.Find(strippedSelector).Remove()
	ext.Text = sitebrief.TruncateText(plainText(doc.Selection), sitebrief.MaxTextLength)

	return ext, nil
}
