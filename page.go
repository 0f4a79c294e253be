package pagesnap

import "context"

// Browser opens live page handles. Implementations wrap a real rendering
// engine (headless Chrome via rod or chromedp).
type Browser interface {
	// NewPage opens a fresh, blank page handle.
	NewPage(ctx context.Context) (PageHandle, error)

	// Close releases browser resources.
	// Must be called when the Browser is no longer needed.
	Close() error
}

// PageHandle is the live, stateful connection to one rendered page: a DOM
// that can be queried, scripts that can be executed against it, and a
// screenshot that can be captured from it. The capture pipeline depends
// only on this capability set, never on a specific rendering engine.
//
// A PageHandle is owned by exactly one pipeline run at a time and must be
// released with Close, including after a failed run.
type PageHandle interface {
	// Load navigates to the URL, waits for the page to finish loading,
	// and returns the resolved URL after redirects.
	// Failure to load is reported with code EUNAVAILABLE.
	Load(ctx context.Context, url string) (loadedURL string, err error)

	// CurrentURL returns the page's current resolved URL.
	// It never fails; before the first Load it returns an empty string.
	CurrentURL() string

	// Title returns the document title.
	Title(ctx context.Context) (string, error)

	// Eval executes a JavaScript expression and discards its result.
	Eval(ctx context.Context, js string) error

	// EvalNumber executes a JavaScript expression and returns its
	// numeric result.
	EvalNumber(ctx context.Context, js string) (float64, error)

	// FindElement returns the first element matching the CSS selector.
	// Returns ENOTFOUND if no element matches.
	FindElement(ctx context.Context, selector string) (Element, error)

	// FindElements returns all elements matching the CSS selector.
	// The result may be empty; an empty match is not an error.
	FindElements(ctx context.Context, selector string) ([]Element, error)

	// PageSource returns the current serialized HTML of the document.
	PageSource(ctx context.Context) (string, error)

	// PlainText returns the rendered text content of the document body.
	PlainText(ctx context.Context) (string, error)

	// Screenshot captures the page as PNG bytes.
	Screenshot(ctx context.Context) ([]byte, error)

	// Close releases the page. Close is safe to call after a failed run.
	Close() error
}

// Element is a handle to a single live DOM element.
type Element interface {
	// Attribute returns the value of the named attribute.
	// Returns ENOTFOUND if the attribute is absent.
	Attribute(ctx context.Context, name string) (string, error)

	// Text returns the rendered text content of the element.
	Text(ctx context.Context) (string, error)
}
