package driven

import (
	"context"

	"github.com/alorle/livetv-sync/internal/playlist"
)

// PlaylistRepository defines the interface for loading and persisting the playlist document.
// This is a driven port that will be implemented by concrete adapters (e.g., local file).
type PlaylistRepository interface {
	// Exists reports whether the playlist is present in storage.
	Exists(ctx context.Context) (bool, error)

	// Load reads the whole playlist. Returns playlist.ErrPlaylistNotFound if it does not exist.
	Load(ctx context.Context) (playlist.Document, error)

	// Save replaces the stored playlist with doc and returns the number of bytes written.
	Save(ctx context.Context, doc playlist.Document) (int, error)
}
