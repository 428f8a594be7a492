package sitebrief

import "context"

// MaxTextLength is the maximum number of characters of visible page text
// handed to the language model.
const MaxTextLength = 10000

// Extraction holds the content extracted from a web page.
// Optional fields are empty when the page does not provide them.
type Extraction struct {
	// Text is the visible page text, truncated to MaxTextLength characters.
	Text string

	// Owner is the best-effort site owner attribution.
	Owner string

	// Title is the trimmed content of the <title> tag.
	Title string

	// MetaDescription is the trimmed content of <meta name="description">.
	MetaDescription string
}

// Extractor fetches a page and extracts its content.
type Extractor interface {
	// Extract fetches the page at url and extracts text, owner, title and
	// meta description. URLs without a scheme are fetched over https.
	// Returns EFETCH if the page cannot be retrieved.
	Extract(ctx context.Context, url string) (*Extraction, error)
}

// TruncateText returns the first n characters of s.
func TruncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
