// Package sitebrief summarizes web pages. It fetches a page, extracts its
// visible text, SEO metadata and a best-effort site owner, and asks a
// language model for a structured, localized Markdown summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, sqlite/).
package sitebrief
