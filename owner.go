package sitebrief

import (
	"context"
	"regexp"
)

// ownerPatterns are tried in order against the whole text; the first
// pattern that matches anywhere wins.
var ownerPatterns = []*regexp.Regexp{
	// Label followed by a capitalized run, e.g. "Betreiber: Jane Doe GmbH".
	// Whitespace includes \p{Zs} so non-breaking and thin spaces count.
	regexp.MustCompile(`(?:Inhaber|Betreiber|Owner|Herausgeber|Verantwortlich(?:er)?|Impressum)[:\s\p{Zs}]*[A-ZÄÖÜ][\p{L}\p{N}_\s\p{Zs},&.\-]{3,99}`),
	// Two capitalized words with an optional legal-entity suffix.
	regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+[\s\p{Zs}]*(?:GmbH|AG|UG|Inc\.|LLC|Ltd\.|S\.A\.|S\.r\.l\.|Sp\. z o\.o\.|e\.K\.|KG|OHG)?`),
}

// MatchOwner returns the first owner-shaped span found in text, or an empty
// string when no pattern matches. The span is returned as matched.
func MatchOwner(text string) string {
	for _, re := range ownerPatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// OwnerStrategy is one step of owner resolution. It returns an empty string
// when it finds nothing.
type OwnerStrategy func(ctx context.Context) string

// ResolveOwner evaluates strategies in order and returns the first non-empty
// result. Later strategies are not evaluated once one succeeds.
func ResolveOwner(ctx context.Context, strategies ...OwnerStrategy) string {
	for _, strategy := range strategies {
		if owner := strategy(ctx); owner != "" {
			return owner
		}
	}
	return ""
}

// TextStrategy returns an OwnerStrategy that runs MatchOwner over text.
func TextStrategy(text string) OwnerStrategy {
	return func(context.Context) string {
		return MatchOwner(text)
	}
}
