// Package chromedp implements the pagesnap browser interfaces using
// chromedp Chrome automation. It is an alternative rendering engine to
// the default rod implementation; the capture pipeline works identically
// against either.
package chromedp

import (
	"context"

	"github.com/chromedp/chromedp"
	"github.com/pagesnap/pagesnap"
)

// Ensure Browser implements pagesnap.Browser at compile time.
var _ pagesnap.Browser = (*Browser)(nil)

// Browser opens live page handles backed by a shared headless Chrome
// allocator. Each page gets its own browser tab.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowser creates a headless Chrome allocator.
// Close must be called when the Browser is no longer needed.
func NewBrowser() (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{allocCtx: allocCtx, cancel: cancel}, nil
}

// NewPage opens a fresh browser tab.
func (b *Browser) NewPage(ctx context.Context) (pagesnap.PageHandle, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	return &Page{ctx: tabCtx, cancel: cancelTab}, nil
}

// Close releases the allocator and every tab opened from it.
func (b *Browser) Close() error {
	b.cancel()
	return nil
}
