// Package stream holds the streams resolved from the channel directory.
package stream

import (
	"fmt"
	"strings"
)

// Quality is a fidelity level offered per channel.
type Quality string

const (
	QualitySD Quality = "SD"
	QualityHD Quality = "HD"
)

// KindTV is the only kind of stream produced by the directory resolver.
const KindTV = "TV"

// Tiers lists the qualities in resolution order. SD is always attempted before HD.
var Tiers = []Quality{QualitySD, QualityHD}

// ParseQuality converts a string to a Quality.
// Returns ErrInvalidQuality for anything other than SD or HD.
func ParseQuality(s string) (Quality, error) {
	switch q := Quality(strings.ToUpper(strings.TrimSpace(s))); q {
	case QualitySD, QualityHD:
		return q, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
}

// ControlText returns the visible text of the on-page button that loads this quality.
func (q Quality) ControlText() string {
	return fmt.Sprintf("Load %s Stream", q)
}

// Label builds the display label for a channel title at this quality.
func (q Quality) Label(title string) string {
	return fmt.Sprintf("%s %s", title, q)
}

// ResolvedStream is a media endpoint discovered for one channel and quality.
type ResolvedStream struct {
	endpoint string
	kind     string
	label    string
}

// NewResolvedStream creates a ResolvedStream.
// Returns ErrEmptyEndpoint or ErrEmptyLabel when either is blank.
func NewResolvedStream(endpoint, kind, label string) (ResolvedStream, error) {
	if strings.TrimSpace(endpoint) == "" {
		return ResolvedStream{}, ErrEmptyEndpoint
	}
	if strings.TrimSpace(label) == "" {
		return ResolvedStream{}, ErrEmptyLabel
	}
	return ResolvedStream{
		endpoint: endpoint,
		kind:     kind,
		label:    label,
	}, nil
}

// Endpoint returns the manifest URI.
func (s ResolvedStream) Endpoint() string {
	return s.endpoint
}

// Kind returns the stream kind, always KindTV for directory streams.
func (s ResolvedStream) Kind() string {
	return s.kind
}

// Label returns the display label, e.g. "ESPN HD".
func (s ResolvedStream) Label() string {
	return s.label
}
