package playlist

import (
	"fmt"
	"regexp"
	"strings"
)

// CategoryAttribute is the metadata attribute carrying the category label.
const CategoryAttribute = "group-title"

var (
	categoryRegex      = regexp.MustCompile(`\s*group-title="[^"]*"`)
	categoryPresentRgx = regexp.MustCompile(`(^|\s)group-title="`)
	logoRegex          = regexp.MustCompile(`tvg-logo="[^"]*"`)
)

// replaceDisplayName replaces the display name (text after last comma) in a metadata line.
// Lines without a comma are returned unchanged.
func replaceDisplayName(extinf, newName string) string {
	if !isMetadata(extinf) {
		return extinf
	}

	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return extinf
	}

	return extinf[:commaIdx+1] + newName
}

// hasCategory reports whether the metadata line already carries a category attribute.
func hasCategory(extinf string) bool {
	return categoryPresentRgx.MatchString(extinf)
}

// injectCategory adds a category attribute to a metadata line that has none.
// It goes right after tvg-logo when present, otherwise right before the
// comma that ends the attribute list.
func injectCategory(extinf, category string) string {
	if !isMetadata(extinf) || hasCategory(extinf) {
		return extinf
	}

	attr := fmt.Sprintf(` %s="%s"`, CategoryAttribute, category)

	if loc := logoRegex.FindStringIndex(extinf); loc != nil {
		return extinf[:loc[1]] + attr + extinf[loc[1]:]
	}

	idx := attributeListEnd(extinf)
	if idx == -1 {
		return extinf
	}
	return extinf[:idx] + attr + extinf[idx:]
}

// attributeListEnd returns the index of the first comma outside quotes, or -1.
func attributeListEnd(extinf string) int {
	inQuotes := false
	for i, r := range extinf {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// removeCategory strips the category attribute from a metadata line.
func removeCategory(extinf string) string {
	if !isMetadata(extinf) || !strings.Contains(extinf, CategoryAttribute+"=") {
		return extinf
	}

	result := categoryRegex.ReplaceAllString(extinf, "")

	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	result = strings.ReplaceAll(result, " ,", ",")

	return result
}
