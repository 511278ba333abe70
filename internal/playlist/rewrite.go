package playlist

import (
	"github.com/alorle/livetv-sync/internal/stream"
)

// Classifier maps a stream label to its category.
type Classifier interface {
	Classify(label string) string
}

// Rewrite substitutes endpoint lines positionally with the given streams.
//
// The n-th endpoint line of the document receives streams[n]. When the line
// before it is a metadata line, its display name becomes the stream label and
// a category attribute is injected unless one is already present.
// Substitution stops silently when either the endpoint lines or the streams
// run out; remaining lines are copied unchanged.
//
// It returns the rewritten document and the number of substituted endpoints.
func Rewrite(doc Document, streams []stream.ResolvedStream, classifier Classifier) (Document, int) {
	updated := make([]string, 0, len(doc.lines))
	streamIndex := 0

	for _, line := range doc.lines {
		if !isEndpoint(line) || streamIndex >= len(streams) {
			updated = append(updated, line)
			continue
		}

		s := streams[streamIndex]

		if last := len(updated) - 1; last >= 0 && isMetadata(updated[last]) {
			extinf := replaceDisplayName(updated[last], s.Label())
			updated[last] = injectCategory(extinf, classifier.Classify(s.Label()))
		}

		updated = append(updated, s.Endpoint())
		streamIndex++
	}

	return Document{lines: updated}, streamIndex
}

// StripCategories removes the category attribute from every metadata line so
// the next Rewrite recomputes it.
func StripCategories(doc Document) Document {
	lines := make([]string, len(doc.lines))
	for i, line := range doc.lines {
		lines[i] = removeCategory(line)
	}
	return Document{lines: lines}
}
