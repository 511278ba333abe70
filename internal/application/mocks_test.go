package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alorle/livetv-sync/internal/directory"
	"github.com/alorle/livetv-sync/internal/playlist"
	"github.com/alorle/livetv-sync/internal/port/driven"
	"github.com/alorle/livetv-sync/internal/stream"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSite scripts what a channel directory site does in the fake browser.
type fakeSite struct {
	directoryURL string
	anchors      []directory.Anchor

	// directoryFailures is the number of directory loads that fail before one succeeds.
	directoryFailures int

	// onLoad lists the traffic observed when a page URL is loaded.
	onLoad map[string][]string
	// onClick lists the traffic observed after clicking a control, keyed by pageURL|text.
	onClick map[string][]string
	// clickErr forces a click error, keyed by pageURL|text.
	clickErr map[string]error
	// gotoErr forces a navigation error per page URL.
	gotoErr map[string]error
}

func clickKey(pageURL, text string) string {
	return pageURL + "|" + text
}

type mockLauncher struct {
	launchFunc func(ctx context.Context) (driven.Browser, error)
	launches   int
}

func (m *mockLauncher) Launch(ctx context.Context) (driven.Browser, error) {
	m.launches++
	return m.launchFunc(ctx)
}

type fakeBrowser struct {
	site *fakeSite

	mu           sync.Mutex
	openPages    int
	maxOpenPages int
	pagesOpened  int
	closed       bool
	clicks       []string
	timeouts     []time.Duration
}

func newFakeBrowser(site *fakeSite) *fakeBrowser {
	return &fakeBrowser{site: site}
}

func (b *fakeBrowser) launcher() *mockLauncher {
	return &mockLauncher{launchFunc: func(ctx context.Context) (driven.Browser, error) {
		return b, nil
	}}
}

func (b *fakeBrowser) NewPage(ctx context.Context) (driven.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.New("browser closed")
	}
	b.openPages++
	b.pagesOpened++
	if b.openPages > b.maxOpenPages {
		b.maxOpenPages = b.openPages
	}
	return &fakePage{browser: b}, nil
}

func (b *fakeBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type fakePage struct {
	browser  *fakeBrowser
	url      string
	handlers []func(string)
	closed   bool
}

func (p *fakePage) emit(urls []string) {
	if p.closed {
		return
	}
	for _, u := range urls {
		for _, h := range p.handlers {
			h(u)
		}
	}
}

func (p *fakePage) Goto(ctx context.Context, url string) error {
	site := p.browser.site
	p.url = url

	if url == site.directoryURL {
		p.browser.mu.Lock()
		failing := site.directoryFailures > 0
		if failing {
			site.directoryFailures--
		}
		p.browser.mu.Unlock()
		if failing {
			return errors.New("net::ERR_CONNECTION_RESET")
		}
	}

	p.emit(site.onLoad[url])
	return site.gotoErr[url]
}

func (p *fakePage) Anchors(ctx context.Context, selector string) ([]directory.Anchor, error) {
	if p.url != p.browser.site.directoryURL {
		return nil, nil
	}
	return p.browser.site.anchors, nil
}

func (p *fakePage) OnResponse(fn func(url string)) {
	p.handlers = append(p.handlers, fn)
}

func (p *fakePage) ClickText(ctx context.Context, text string, timeout time.Duration) error {
	p.browser.mu.Lock()
	p.browser.clicks = append(p.browser.clicks, clickKey(p.url, text))
	p.browser.timeouts = append(p.browser.timeouts, timeout)
	p.browser.mu.Unlock()

	key := clickKey(p.url, text)
	if err := p.browser.site.clickErr[key]; err != nil {
		return err
	}
	p.emit(p.browser.site.onClick[key])
	return nil
}

func (p *fakePage) Close() error {
	p.closed = true
	p.browser.mu.Lock()
	defer p.browser.mu.Unlock()
	p.browser.openPages--
	return nil
}

type mockPlaylistRepository struct {
	existsFunc func(ctx context.Context) (bool, error)
	loadFunc   func(ctx context.Context) (playlist.Document, error)
	saveFunc   func(ctx context.Context, doc playlist.Document) (int, error)
}

func (m *mockPlaylistRepository) Exists(ctx context.Context) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx)
	}
	return true, nil
}

func (m *mockPlaylistRepository) Load(ctx context.Context) (playlist.Document, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return playlist.Document{}, nil
}

func (m *mockPlaylistRepository) Save(ctx context.Context, doc playlist.Document) (int, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, doc)
	}
	return len(doc.Bytes()), nil
}

type mockStreamResolver struct {
	resolveFunc func(ctx context.Context, directoryURL string) ([]stream.ResolvedStream, error)
	calls       int
}

func (m *mockStreamResolver) Resolve(ctx context.Context, directoryURL string) ([]stream.ResolvedStream, error) {
	m.calls++
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, directoryURL)
	}
	return nil, nil
}

type mapClassifier map[string]string

func (m mapClassifier) Classify(label string) string {
	if c, ok := m[label]; ok {
		return c
	}
	return "Others"
}
