// Package rod implements the pagesnap browser interfaces using go-rod
// Chrome automation. This is the default rendering engine.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pagesnap/pagesnap"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Ensure Browser implements pagesnap.Browser at compile time.
var _ pagesnap.Browser = (*Browser)(nil)

// Browser opens live page handles backed by a headless Chrome instance.
// Chrome accumulates memory over time and the baseline never returns to
// initial levels even with proper page cleanup, so the underlying browser
// is recycled after maxPages pages have been opened.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithMaxPages sets the number of pages before the browser is recycled.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) Option {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launchBrowser(); err != nil {
		return nil, err
	}

	return b, nil
}

// NewPage opens a fresh, blank page handle, recycling the browser first
// if the page count has reached maxPages.
func (b *Browser) NewPage(ctx context.Context) (pagesnap.PageHandle, error) {
	b.mu.Lock()
	if atomic.LoadInt64(&b.pageCount) >= b.maxPages {
		b.recycleBrowser()
	}
	browser := b.browser
	b.mu.Unlock()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.EUNAVAILABLE, "opening page: %v", err)
	}
	atomic.AddInt64(&b.pageCount, 1)

	return &Page{page: page.Context(ctx)}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (b *Browser) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (b *Browser) closeBrowser() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (b *Browser) recycleBrowser() {
	oldBrowser := b.browser
	oldLauncher := b.launcher
	b.browser = nil
	b.launcher = nil

	if err := b.launchBrowser(); err != nil {
		b.browser = oldBrowser
		b.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&b.pageCount, 0)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
