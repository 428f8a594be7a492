package sitebrief

import "strings"

// Locale is a supported output language.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
	LocalePL Locale = "pl"
)

// DefaultLocale is used when a requested language is not supported.
const DefaultLocale = LocaleEN

// Locales returns all supported locales.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleDE, LocalePL}
}

// ParseLocale returns the Locale for code, or DefaultLocale when code is not
// a supported language.
func ParseLocale(code string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := promptTemplates[l]; ok {
		return l
	}
	return DefaultLocale
}
