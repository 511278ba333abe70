package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/alorle/livetv-sync/internal/directory"
	"github.com/alorle/livetv-sync/internal/endpoint"
	"github.com/alorle/livetv-sync/internal/metrics"
	"github.com/alorle/livetv-sync/internal/port/driven"
	"github.com/alorle/livetv-sync/internal/stream"
)

const (
	defaultAnchorSelector = "ol.list-group a"
	defaultClickTimeout   = 5 * time.Second
	directoryRetryDelay   = 2 * time.Second
)

// ResolverOptions configures the channel directory resolver.
type ResolverOptions struct {
	// BaseURL is prepended to every channel href.
	BaseURL string
	// AnchorSelector selects the channel anchors on the directory page.
	AnchorSelector string
	// ClickTimeout bounds the click on the "Load {quality} Stream" control.
	ClickTimeout time.Duration
	// SettleDelay is how long to keep observing traffic after the click.
	SettleDelay time.Duration
	// DirectoryLoadAttempts is how many times the directory page load is tried.
	DirectoryLoadAttempts uint
}

// ResolverService discovers stream endpoints behind the channel directory by
// observing each channel page's network traffic in a real browser.
// Channels and qualities are resolved strictly one page at a time.
type ResolverService struct {
	launcher driven.BrowserLauncher
	opts     ResolverOptions
	logger   *slog.Logger

	sleep      func(ctx context.Context, d time.Duration) error
	retryDelay time.Duration
}

// NewResolverService creates a resolver. Zero option values fall back to
// defaults, except SettleDelay where zero disables the settle wait.
func NewResolverService(launcher driven.BrowserLauncher, opts ResolverOptions, logger *slog.Logger) *ResolverService {
	if opts.AnchorSelector == "" {
		opts.AnchorSelector = defaultAnchorSelector
	}
	if opts.ClickTimeout <= 0 {
		opts.ClickTimeout = defaultClickTimeout
	}
	if opts.DirectoryLoadAttempts == 0 {
		opts.DirectoryLoadAttempts = 1
	}
	return &ResolverService{
		launcher:   launcher,
		opts:       opts,
		logger:     logger,
		sleep:      sleepContext,
		retryDelay: directoryRetryDelay,
	}
}

// Resolve launches a browser, enumerates the channels listed at directoryURL and
// resolves an endpoint for every channel and quality tier, in listing order with
// SD before HD. Pairs that yield nothing are omitted.
//
// Only a browser launch failure, a directory load failure (directory.ErrDirectoryLoad)
// or context cancellation are returned as errors.
func (r *ResolverService) Resolve(ctx context.Context, directoryURL string) ([]stream.ResolvedStream, error) {
	browser, err := r.launcher.Launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			r.logger.Warn("error closing browser", "error", err)
		}
	}()

	r.logger.Info("loading channel list", "url", directoryURL)
	listings, err := r.listChannels(ctx, browser, directoryURL)
	if err != nil {
		return nil, err
	}
	metrics.SetChannelsDiscovered(len(listings))
	r.logger.Info("channel list loaded", "channels", len(listings))

	var streams []stream.ResolvedStream
	for _, listing := range listings {
		pageURL := listing.PageURL(r.opts.BaseURL)
		r.logger.Info("scraping channel page", "url", pageURL, "title", listing.Title())

		for _, quality := range stream.Tiers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			endpointURL, ok, err := r.resolveTier(ctx, browser, pageURL, quality)
			if err != nil {
				return nil, err
			}
			if !ok {
				metrics.RecordAttempt(string(quality), metrics.OutcomeMissed)
				r.logger.Info("stream not found", "title", listing.Title(), "quality", quality)
				continue
			}

			s, err := stream.NewResolvedStream(endpointURL, stream.KindTV, quality.Label(listing.Title()))
			if err != nil {
				metrics.RecordAttempt(string(quality), metrics.OutcomeMissed)
				r.logger.Warn("discarding resolved stream", "title", listing.Title(), "quality", quality, "error", err)
				continue
			}

			metrics.RecordAttempt(string(quality), metrics.OutcomeResolved)
			r.logger.Info("stream resolved", "title", listing.Title(), "quality", quality, "endpoint", endpointURL)
			streams = append(streams, s)
		}
	}

	return streams, nil
}

// listChannels loads the directory page and returns its listings in document order.
func (r *ResolverService) listChannels(ctx context.Context, browser driven.Browser, directoryURL string) ([]directory.Listing, error) {
	var anchors []directory.Anchor

	err := retry.Do(
		func() error {
			page, err := browser.NewPage(ctx)
			if err != nil {
				return fmt.Errorf("opening page: %w", err)
			}
			defer r.closePage(page)

			if err := page.Goto(ctx, directoryURL); err != nil {
				return fmt.Errorf("navigating: %w", err)
			}

			found, err := page.Anchors(ctx, r.opts.AnchorSelector)
			if err != nil {
				return fmt.Errorf("enumerating anchors: %w", err)
			}
			anchors = found
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.opts.DirectoryLoadAttempts),
		retry.Delay(r.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Warn("channel list load failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %w", directory.ErrDirectoryLoad, directoryURL, err)
	}

	return directory.FromAnchors(anchors), nil
}

// resolveTier opens a dedicated page for one channel and quality, arms the
// endpoint extractor on its traffic, triggers playback and waits for the
// settle window. Automation failures are logged and reported as no result;
// only context cancellation is returned as an error.
func (r *ResolverService) resolveTier(ctx context.Context, browser driven.Browser, pageURL string, quality stream.Quality) (string, bool, error) {
	page, err := browser.NewPage(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		r.logger.Warn("could not open page", "url", pageURL, "quality", quality, "error", err)
		return "", false, nil
	}

	var match firstMatch
	page.OnResponse(func(observed string) {
		if found, ok := endpoint.Extract(observed); ok {
			match.offer(found)
		}
	})

	if err := page.Goto(ctx, pageURL); err != nil {
		r.closePage(page)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		r.logger.Warn("could not load channel page", "url", pageURL, "quality", quality, "error", err)
		endpointURL, ok := match.get()
		return endpointURL, ok, nil
	}

	if err := r.triggerPlayback(ctx, page, quality); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.closePage(page)
			return "", false, ctxErr
		}
		metrics.RecordClickFailure(string(quality))
		r.logger.Warn("stream control unavailable", "url", pageURL, "quality", quality, "error", err)
	}

	if err := r.sleep(ctx, r.opts.SettleDelay); err != nil {
		r.closePage(page)
		return "", false, err
	}

	r.closePage(page)

	endpointURL, ok := match.get()
	return endpointURL, ok, nil
}

// triggerPlayback clicks the quality's load control. A timeout or missing
// control is reported as directory.ErrControlUnavailable.
func (r *ResolverService) triggerPlayback(ctx context.Context, page driven.Page, quality stream.Quality) error {
	err := page.ClickText(ctx, quality.ControlText(), r.opts.ClickTimeout)
	if err == nil {
		return nil
	}
	if errors.Is(err, driven.ErrClickTimeout) {
		return fmt.Errorf("%w: %q not clickable within %s", directory.ErrControlUnavailable, quality.ControlText(), r.opts.ClickTimeout)
	}
	return fmt.Errorf("%w: %w", directory.ErrControlUnavailable, err)
}

func (r *ResolverService) closePage(page driven.Page) {
	if err := page.Close(); err != nil {
		r.logger.Warn("error closing page", "error", err)
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
