// Package directory models the channel listings found on the directory page.
package directory

import (
	"strings"
)

// TitleSeparator joins the lines of a multi-line anchor text.
const TitleSeparator = " - "

// Anchor is a raw anchor element scraped from the directory page.
type Anchor struct {
	Href string
	Text string
}

// Listing is a channel page discovered on the directory page.
// It only lives for the duration of a resolution pass.
type Listing struct {
	href  string
	title string
}

// NewListing creates a Listing from an anchor's href and raw text content.
// Returns ErrEmptyHref if href is empty or contains only whitespace.
func NewListing(href, rawTitle string) (Listing, error) {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" {
		return Listing{}, ErrEmptyHref
	}

	return Listing{
		href:  trimmed,
		title: NormalizeTitle(rawTitle),
	}, nil
}

// Href returns the channel page path relative to the site base URL.
func (l Listing) Href() string {
	return l.href
}

// Title returns the normalized display title.
func (l Listing) Title() string {
	return l.title
}

// PageURL returns the absolute channel page URL. The base URL and href are
// concatenated as-is.
func (l Listing) PageURL(baseURL string) string {
	return baseURL + l.href
}

// NormalizeTitle joins the non-empty trimmed lines of raw with TitleSeparator.
func NormalizeTitle(raw string) string {
	var parts []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, TitleSeparator)
}

// FromAnchors builds listings from scraped anchors in document order,
// skipping anchors without an href.
func FromAnchors(anchors []Anchor) []Listing {
	listings := make([]Listing, 0, len(anchors))
	for _, a := range anchors {
		l, err := NewListing(a.Href, a.Text)
		if err != nil {
			continue
		}
		listings = append(listings, l)
	}
	return listings
}
