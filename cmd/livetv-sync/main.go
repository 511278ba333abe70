package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/alorle/livetv-sync/internal/adapter/driven"
	"github.com/alorle/livetv-sync/internal/application"
	"github.com/alorle/livetv-sync/internal/category"
	"github.com/alorle/livetv-sync/internal/config"
	"github.com/alorle/livetv-sync/internal/logging"
	"github.com/alorle/livetv-sync/internal/metrics"
	"github.com/alorle/livetv-sync/internal/playlist"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load configuration: %v", err)
		return 2
	}

	// Create structured logger
	baseLogger, logCloser, err := logging.New(os.Stdout, logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Printf("failed to set up logging: %v", err)
		return 2
	}
	defer func() {
		if err := logCloser.Close(); err != nil {
			log.Printf("error closing log file: %v", err)
		}
	}()

	logger := baseLogger.With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting livetv-sync",
		"playlist", cfg.Playlist.Path,
		"directory", cfg.DirectoryURL(),
		"browser", cfg.Browser.Name,
		"headless", cfg.Browser.Headless,
		"log_level", cfg.Log.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Category table: built-in entries with optional file overrides
	overrides, err := driven.NewCategoryYAMLSource(nil, cfg.Categories.File).LoadCategories(ctx)
	if err != nil {
		logger.Error("failed to load category overrides", "file", cfg.Categories.File, "error", err)
		return 1
	}
	categories := category.DefaultTable().Merge(overrides)
	logger.Debug("category table ready", "entries", categories.Len(), "overrides", len(overrides))

	// Create driven adapters
	playlists := driven.NewPlaylistFileRepository(nil, cfg.Playlist.Path)
	launcher := driven.NewPlaywrightLauncher(driven.PlaywrightOptions{
		Browser:           cfg.Browser.Name,
		Headless:          cfg.Browser.Headless,
		Install:           cfg.Browser.Install,
		NavigationTimeout: cfg.Browser.NavigationTimeout,
	}, logger)

	// Create application services
	resolver := application.NewResolverService(launcher, application.ResolverOptions{
		BaseURL:               cfg.Directory.BaseURL,
		AnchorSelector:        cfg.Directory.AnchorSelector,
		ClickTimeout:          cfg.Browser.ClickTimeout,
		SettleDelay:           cfg.Browser.SettleDelay,
		DirectoryLoadAttempts: cfg.Directory.LoadAttempts,
	}, logger)
	syncService := application.NewSyncService(playlists, resolver, categories, application.SyncOptions{
		DirectoryURL:    cfg.DirectoryURL(),
		EPGURL:          cfg.Playlist.EPGURL,
		ResetCategories: cfg.Playlist.ResetCategories,
	}, logger)

	started := time.Now()
	result, err := syncService.Run(ctx)
	exitCode := 0
	switch {
	case errors.Is(err, playlist.ErrPlaylistNotFound):
		logger.Error("playlist file not found, nothing done", "path", playlists.Path())
		exitCode = 1
	case err != nil:
		logger.Error("sync failed", "error", err)
		exitCode = 1
	default:
		logger.Info("playlist updated",
			"path", playlists.Path(),
			"resolved", result.Resolved,
			"endpoint_lines", result.EndpointLines,
			"substituted", result.Substituted,
			"size", humanize.Bytes(uint64(result.BytesWritten)),
			"took", time.Since(started).Round(time.Millisecond),
		)
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	return exitCode
}
