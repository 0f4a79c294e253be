// Package slog provides log/slog-based logging decorators for the
// pagesnap browser interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesnap/pagesnap"
)

// Ensure LoggingBrowser implements pagesnap.Browser.
var _ pagesnap.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging. Pages opened through
// it are wrapped in LoggingPage.
type LoggingBrowser struct {
	next   pagesnap.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next pagesnap.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// NewPage opens a page on the wrapped browser and returns it wrapped
// with logging.
func (b *LoggingBrowser) NewPage(ctx context.Context) (pagesnap.PageHandle, error) {
	page, err := b.next.NewPage(ctx)
	if err != nil {
		b.logger.Info("new page", "err", err)
		return nil, err
	}
	return &LoggingPage{next: page, logger: b.logger}, nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}

// Ensure LoggingPage implements pagesnap.PageHandle.
var _ pagesnap.PageHandle = (*LoggingPage)(nil)

// LoggingPage wraps a PageHandle with debug logging of the expensive
// operations: navigation, source readout, and screenshot capture.
type LoggingPage struct {
	next   pagesnap.PageHandle
	logger *slog.Logger
}

// Load logs the URL being loaded and delegates to the wrapped page.
func (p *LoggingPage) Load(ctx context.Context, url string) (loadedURL string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("load",
			"url", url,
			"loadedUrl", loadedURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Load(ctx, url)
}

// PageSource logs the size of the readout and delegates to the wrapped page.
func (p *LoggingPage) PageSource(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("page source",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.PageSource(ctx)
}

// Screenshot logs the capture and delegates to the wrapped page.
func (p *LoggingPage) Screenshot(ctx context.Context) (png []byte, err error) {
	defer func(begin time.Time) {
		p.logger.Info("screenshot",
			"bytes", len(png),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Screenshot(ctx)
}

// CurrentURL delegates to the wrapped page.
func (p *LoggingPage) CurrentURL() string {
	return p.next.CurrentURL()
}

// Title delegates to the wrapped page.
func (p *LoggingPage) Title(ctx context.Context) (string, error) {
	return p.next.Title(ctx)
}

// Eval delegates to the wrapped page.
func (p *LoggingPage) Eval(ctx context.Context, js string) error {
	return p.next.Eval(ctx, js)
}

// EvalNumber delegates to the wrapped page.
func (p *LoggingPage) EvalNumber(ctx context.Context, js string) (float64, error) {
	return p.next.EvalNumber(ctx, js)
}

// FindElement delegates to the wrapped page.
func (p *LoggingPage) FindElement(ctx context.Context, selector string) (pagesnap.Element, error) {
	return p.next.FindElement(ctx, selector)
}

// FindElements delegates to the wrapped page.
func (p *LoggingPage) FindElements(ctx context.Context, selector string) ([]pagesnap.Element, error) {
	return p.next.FindElements(ctx, selector)
}

// PlainText delegates to the wrapped page.
func (p *LoggingPage) PlainText(ctx context.Context) (string, error) {
	return p.next.PlainText(ctx)
}

// Close delegates to the wrapped page.
func (p *LoggingPage) Close() error {
	return p.next.Close()
}
