package driven

import (
	"context"
	"errors"
	"time"

	"github.com/alorle/livetv-sync/internal/directory"
)

// ErrClickTimeout is returned by Page.ClickText when the control did not become
// clickable within the timeout.
var ErrClickTimeout = errors.New("click timed out")

// BrowserLauncher starts a browser session.
// This is a driven port implemented by a concrete adapter (e.g., Playwright).
type BrowserLauncher interface {
	// Launch starts the browser and opens a single browsing context.
	Launch(ctx context.Context) (Browser, error)
}

// Browser is the page-automation substrate used to scrape the channel directory.
// A single Browser keeps one browsing context alive for all pages it creates.
type Browser interface {
	// NewPage opens a new page in the shared browsing context.
	NewPage(ctx context.Context) (Page, error)

	// Close releases the browsing context and the browser process.
	Close() error
}

// Page is a single browser tab. Event subscriptions end when the page is closed.
type Page interface {
	// Goto navigates to url and waits for the load to complete.
	Goto(ctx context.Context, url string) error

	// Anchors returns href and text content of every element matching selector,
	// in document order. Anchors without an href have an empty Href.
	Anchors(ctx context.Context, selector string) ([]directory.Anchor, error)

	// OnResponse registers fn to be called with the URL of every network
	// response observed on the page. fn may be called from another goroutine.
	OnResponse(fn func(url string))

	// ClickText clicks the element whose visible text equals text exactly.
	// Returns ErrClickTimeout if it could not be clicked within timeout.
	ClickText(ctx context.Context, text string, timeout time.Duration) error

	// Close closes the page.
	Close() error
}
