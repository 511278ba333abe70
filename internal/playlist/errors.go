package playlist

import "errors"

// Domain errors for playlist documents.
var (
	ErrPlaylistNotFound = errors.New("playlist file not found")
)
