package driven

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/alorle/livetv-sync/internal/playlist"
)

const defaultPlaylistMode os.FileMode = 0644

// PlaylistFileRepository stores the playlist document as a single file.
// It implements the driven.PlaylistRepository port.
type PlaylistFileRepository struct {
	fs   afero.Fs
	path string
}

// NewPlaylistFileRepository creates a repository for the playlist at path.
// If fsys is nil, the OS filesystem is used.
func NewPlaylistFileRepository(fsys afero.Fs, path string) *PlaylistFileRepository {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &PlaylistFileRepository{fs: fsys, path: path}
}

// Path returns the playlist file path.
func (r *PlaylistFileRepository) Path() string {
	return r.path
}

// Exists reports whether the playlist file is present.
func (r *PlaylistFileRepository) Exists(ctx context.Context) (bool, error) {
	ok, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", r.path, err)
	}
	return ok, nil
}

// Load reads the whole playlist file.
// Returns playlist.ErrPlaylistNotFound when the file does not exist.
func (r *PlaylistFileRepository) Load(ctx context.Context) (playlist.Document, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return playlist.Document{}, fmt.Errorf("%w: %s", playlist.ErrPlaylistNotFound, r.path)
		}
		return playlist.Document{}, fmt.Errorf("reading %s: %w", r.path, err)
	}
	return playlist.Parse(data), nil
}

// Save writes doc to a temporary file next to the playlist and renames it
// over the existing file, keeping its permissions.
func (r *PlaylistFileRepository) Save(ctx context.Context, doc playlist.Document) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	mode := defaultPlaylistMode
	if info, err := r.fs.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(r.path)
	tmp, err := afero.TempFile(r.fs, dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	data := doc.Bytes()
	n, err := tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := r.fs.Chmod(tmpName, mode); err != nil {
		_ = r.fs.Remove(tmpName)
		return 0, fmt.Errorf("setting permissions: %w", err)
	}

	if err := r.fs.Rename(tmpName, r.path); err != nil {
		_ = r.fs.Remove(tmpName)
		return 0, fmt.Errorf("replacing %s: %w", r.path, err)
	}

	return n, nil
}
