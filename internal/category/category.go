// Package category maps stream labels to coarse genre categories.
package category

// Fallback is returned for labels without a table entry.
const Fallback = "Others"

// Table is an immutable label to category mapping.
// Lookups are exact: case, whitespace and punctuation all matter.
type Table struct {
	entries map[string]string
}

// NewTable creates a Table from entries. The map is copied, so later changes
// to entries do not affect the table.
func NewTable(entries map[string]string) Table {
	copied := make(map[string]string, len(entries))
	for label, cat := range entries {
		if cat == "" {
			continue
		}
		copied[label] = cat
	}
	return Table{entries: copied}
}

// Classify returns the category for label, or Fallback when absent.
func (t Table) Classify(label string) string {
	if cat, ok := t.entries[label]; ok {
		return cat
	}
	return Fallback
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Merge returns a new Table holding t's entries overlaid with overrides.
func (t Table) Merge(overrides map[string]string) Table {
	merged := make(map[string]string, len(t.entries)+len(overrides))
	for label, cat := range t.entries {
		merged[label] = cat
	}
	for label, cat := range overrides {
		merged[label] = cat
	}
	return NewTable(merged)
}
