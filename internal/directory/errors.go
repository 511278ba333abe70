package directory

import "errors"

// Domain errors for channel directory operations.
var (
	// Listing validation errors
	ErrEmptyHref = errors.New("channel listing href cannot be empty")

	// Resolution errors
	ErrDirectoryLoad      = errors.New("channel directory could not be loaded")
	ErrControlUnavailable = errors.New("stream control not available")
)
