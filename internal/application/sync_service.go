package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alorle/livetv-sync/internal/metrics"
	"github.com/alorle/livetv-sync/internal/playlist"
	"github.com/alorle/livetv-sync/internal/port/driven"
	"github.com/alorle/livetv-sync/internal/stream"
)

// StreamResolver resolves the ordered stream list from a channel directory.
type StreamResolver interface {
	Resolve(ctx context.Context, directoryURL string) ([]stream.ResolvedStream, error)
}

// SyncOptions configures a sync run.
type SyncOptions struct {
	// DirectoryURL is the channel directory page.
	DirectoryURL string
	// EPGURL is advertised in the rewritten header.
	EPGURL string
	// ResetCategories strips existing category attributes before rewriting.
	ResetCategories bool
}

// SyncResult summarizes a sync run.
type SyncResult struct {
	Resolved      int
	EndpointLines int
	Substituted   int
	BytesWritten  int
}

// SyncService orchestrates a playlist sync:
// load the playlist, resolve fresh streams, rewrite and save it.
type SyncService struct {
	playlists  driven.PlaylistRepository
	resolver   StreamResolver
	classifier playlist.Classifier
	opts       SyncOptions
	logger     *slog.Logger
	now        func() time.Time
}

// NewSyncService creates a new sync service with the required dependencies.
func NewSyncService(
	playlists driven.PlaylistRepository,
	resolver StreamResolver,
	classifier playlist.Classifier,
	opts SyncOptions,
	logger *slog.Logger,
) *SyncService {
	if opts.EPGURL == "" {
		opts.EPGURL = playlist.DefaultEPGURL
	}
	return &SyncService{
		playlists:  playlists,
		resolver:   resolver,
		classifier: classifier,
		opts:       opts,
		logger:     logger,
		now:        time.Now,
	}
}

// Run performs one sync:
// 1. Check the playlist exists (before any browser is started)
// 2. Load it and normalize its header
// 3. Resolve streams from the channel directory
// 4. Substitute endpoints positionally when any stream was resolved
// 5. Save the playlist
//
// Returns playlist.ErrPlaylistNotFound when the playlist is missing, and the
// resolver's error when the directory cannot be loaded. Nothing is written in
// either case.
func (s *SyncService) Run(ctx context.Context) (SyncResult, error) {
	started := s.now()

	exists, err := s.playlists.Exists(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("checking playlist: %w", err)
	}
	if !exists {
		return SyncResult{}, playlist.ErrPlaylistNotFound
	}

	doc, err := s.playlists.Load(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("loading playlist: %w", err)
	}

	doc = playlist.NormalizeHeader(doc, s.opts.EPGURL, s.now())
	if s.opts.ResetCategories {
		doc = playlist.StripCategories(doc)
	}

	result := SyncResult{EndpointLines: doc.EndpointCount()}

	s.logger.Info("replacing stream URLs", "directory", s.opts.DirectoryURL, "endpoint_lines", result.EndpointLines)
	streams, err := s.resolver.Resolve(ctx, s.opts.DirectoryURL)
	if err != nil {
		return SyncResult{}, fmt.Errorf("resolving streams: %w", err)
	}
	result.Resolved = len(streams)

	if len(streams) > 0 {
		doc, result.Substituted = playlist.Rewrite(doc, streams, s.classifier)
	}
	if result.Resolved != result.EndpointLines {
		s.logger.Warn("resolved streams do not match playlist endpoints",
			"resolved", result.Resolved,
			"endpoint_lines", result.EndpointLines,
			"substituted", result.Substituted,
		)
	}

	written, err := s.playlists.Save(ctx, doc)
	if err != nil {
		return SyncResult{}, fmt.Errorf("saving playlist: %w", err)
	}
	result.BytesWritten = written

	metrics.SetEndpointsSubstituted(result.Substituted)
	metrics.RecordSuccess(s.now(), s.now().Sub(started))

	return result, nil
}
