package pagesnap

// ExtractResult holds the isolated main content of an HTML page.
type ExtractResult struct {
	// Title is the page title, when the extractor can find one.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, ads, cookie banners) has been removed.
	ContentHTML string
}

// Extractor isolates the main content region of an HTML document and
// removes boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns ENOTFOUND when the document has no content root at all;
	// that condition is fatal for a capture run.
	Extract(html string) (*ExtractResult, error)
}
