// Package playlist reads, rewrites and serializes extended M3U playlist documents.
package playlist

import (
	"fmt"
	"strings"
	"time"
)

const (
	// HeaderPrefix starts the header line of an extended M3U document.
	HeaderPrefix = "#EXTM3U"

	// MetadataPrefix starts a metadata line describing the next endpoint.
	MetadataPrefix = "#EXTINF"

	// EndpointPrefix marks a line holding an endpoint URI.
	EndpointPrefix = "http"

	// DefaultEPGURL is the guide source advertised in the header.
	DefaultEPGURL = "https://tvpass.org/epg.xml"
)

// Document is an ordered sequence of playlist lines.
type Document struct {
	lines []string
}

// NewDocument creates a Document from lines. The slice is copied.
func NewDocument(lines []string) Document {
	return Document{lines: append([]string(nil), lines...)}
}

// Parse splits raw playlist content into a Document.
// CRLF line endings are accepted and a single trailing newline is ignored.
func Parse(data []byte) Document {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Document{}
	}
	return Document{lines: strings.Split(text, "\n")}
}

// Lines returns a copy of the document lines.
func (d Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Bytes joins the lines with newlines.
func (d Document) Bytes() []byte {
	return []byte(strings.Join(d.lines, "\n"))
}

// EndpointCount returns the number of endpoint lines.
func (d Document) EndpointCount() int {
	n := 0
	for _, line := range d.lines {
		if isEndpoint(line) {
			n++
		}
	}
	return n
}

// BuildHeader returns a header line advertising epgURL and stamped with now
// in seconds since the epoch.
func BuildHeader(epgURL string, now time.Time) string {
	return fmt.Sprintf(`%s url-tvg="%s" # Updated: %d`, HeaderPrefix, epgURL, now.Unix())
}

// NormalizeHeader removes every existing header line and prepends a fresh one.
func NormalizeHeader(doc Document, epgURL string, now time.Time) Document {
	lines := make([]string, 0, len(doc.lines)+1)
	lines = append(lines, BuildHeader(epgURL, now))
	for _, line := range doc.lines {
		if isHeader(line) {
			continue
		}
		lines = append(lines, line)
	}
	return Document{lines: lines}
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), HeaderPrefix)
}

func isMetadata(line string) bool {
	return strings.HasPrefix(line, MetadataPrefix)
}

func isEndpoint(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), EndpointPrefix)
}
