package driven

import "context"

// CategorySource provides category overrides to merge over the built-in table.
type CategorySource interface {
	// LoadCategories returns label to category overrides.
	// An absent source yields an empty map and no error.
	LoadCategories(ctx context.Context) (map[string]string, error)
}
