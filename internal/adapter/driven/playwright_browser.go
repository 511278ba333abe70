package driven

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/alorle/livetv-sync/internal/directory"
	port "github.com/alorle/livetv-sync/internal/port/driven"
)

const (
	defaultBrowserName       = "firefox"
	defaultNavigationTimeout = 30 * time.Second
)

// PlaywrightOptions configures the Playwright browser adapter.
type PlaywrightOptions struct {
	// Browser is one of "firefox", "chromium" or "webkit".
	Browser string
	// Headless runs the browser without a window.
	Headless bool
	// Install downloads the driver and browser before launching.
	Install bool
	// NavigationTimeout bounds every page navigation.
	NavigationTimeout time.Duration
}

// PlaywrightLauncher starts browsers through playwright-go.
// It implements the driven.BrowserLauncher port.
type PlaywrightLauncher struct {
	opts   PlaywrightOptions
	logger *slog.Logger
}

// NewPlaywrightLauncher creates a launcher. Empty options fall back to a
// Firefox browser with a 30-second navigation timeout.
func NewPlaywrightLauncher(opts PlaywrightOptions, logger *slog.Logger) *PlaywrightLauncher {
	if opts.Browser == "" {
		opts.Browser = defaultBrowserName
	}
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = defaultNavigationTimeout
	}
	return &PlaywrightLauncher{opts: opts, logger: logger}
}

// Launch starts the Playwright driver, the configured browser and a single
// browsing context shared by every page.
func (l *PlaywrightLauncher) Launch(ctx context.Context) (port.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.opts.Install {
		l.logger.Info("installing playwright driver", "browser", l.opts.Browser)
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{l.opts.Browser}}); err != nil {
			return nil, fmt.Errorf("installing playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browserType, err := selectBrowserType(pw, l.opts.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launching %s: %w", l.opts.Browser, err)
	}

	browserCtx, err := browser.NewContext()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	l.logger.Debug("browser launched", "browser", l.opts.Browser, "headless", l.opts.Headless)

	return &PlaywrightBrowser{
		pw:                pw,
		browser:           browser,
		context:           browserCtx,
		navigationTimeout: l.opts.NavigationTimeout,
	}, nil
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "firefox":
		return pw.Firefox, nil
	case "chromium", "chrome":
		return pw.Chromium, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// PlaywrightBrowser is a running browser with one browsing context.
// It implements the driven.Browser port.
type PlaywrightBrowser struct {
	pw                *playwright.Playwright
	browser           playwright.Browser
	context           playwright.BrowserContext
	navigationTimeout time.Duration
}

// NewPage opens a new page in the shared browsing context.
func (b *PlaywrightBrowser) NewPage(ctx context.Context) (port.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := b.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return &playwrightPage{page: page, navigationTimeout: b.navigationTimeout}, nil
}

// Close closes the browsing context, the browser and the Playwright driver.
func (b *PlaywrightBrowser) Close() error {
	var errs []error
	if err := b.context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing context: %w", err))
	}
	if err := b.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing browser: %w", err))
	}
	if err := b.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stopping playwright: %w", err))
	}
	return errors.Join(errs...)
}

// playwrightPage adapts a playwright.Page to the driven.Page port.
type playwrightPage struct {
	page              playwright.Page
	navigationTimeout time.Duration
}

func (p *playwrightPage) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(milliseconds(p.navigationTimeout)),
	}); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (p *playwrightPage) Anchors(ctx context.Context, selector string) ([]directory.Anchor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locators, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, fmt.Errorf("locating %q: %w", selector, err)
	}

	anchors := make([]directory.Anchor, 0, len(locators))
	for _, loc := range locators {
		href, err := loc.GetAttribute("href")
		if err != nil {
			return nil, fmt.Errorf("reading href: %w", err)
		}
		text, err := loc.TextContent()
		if err != nil {
			return nil, fmt.Errorf("reading text content: %w", err)
		}
		anchors = append(anchors, directory.Anchor{Href: href, Text: text})
	}

	return anchors, nil
}

func (p *playwrightPage) OnResponse(fn func(url string)) {
	p.page.OnResponse(func(resp playwright.Response) {
		fn(resp.URL())
	})
}

func (p *playwrightPage) ClickText(ctx context.Context, text string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.page.GetByText(text, playwright.PageGetByTextOptions{
		Exact: playwright.Bool(true),
	}).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(milliseconds(timeout)),
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", port.ErrClickTimeout, err)
	}
	return err
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}

// milliseconds converts d to the float milliseconds Playwright expects.
func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
