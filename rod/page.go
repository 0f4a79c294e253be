package rod

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/pagesnap/pagesnap"
)

// Ensure Page implements pagesnap.PageHandle at compile time.
var _ pagesnap.PageHandle = (*Page)(nil)

// Page adapts a rod page to the pagesnap.PageHandle interface.
// A Page is owned by a single pipeline run and is not safe for
// concurrent use.
type Page struct {
	page       *rod.Page
	currentURL string
}

// Load navigates to the URL, waits for the load event, and returns the
// resolved URL after redirects.
func (p *Page) Load(ctx context.Context, url string) (string, error) {
	page := p.page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", pagesnap.Errorf(pagesnap.EUNAVAILABLE, "loading %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", pagesnap.Errorf(pagesnap.EUNAVAILABLE, "waiting for %s to load: %v", url, err)
	}

	p.currentURL = url
	if info, err := page.Info(); err == nil {
		p.currentURL = info.URL
	}
	return p.currentURL, nil
}

// CurrentURL returns the page's resolved URL. It never fails; if the
// browser cannot be queried the last known URL is returned.
func (p *Page) CurrentURL() string {
	if info, err := p.page.Info(); err == nil {
		return info.URL
	}
	return p.currentURL
}

// Title returns the document title.
func (p *Page) Title(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// Eval executes a JavaScript expression and discards its result.
func (p *Page) Eval(ctx context.Context, js string) error {
	_, err := p.page.Context(ctx).Eval(js)
	return err
}

// EvalNumber executes a JavaScript expression and returns its numeric result.
func (p *Page) EvalNumber(ctx context.Context, js string) (float64, error) {
	obj, err := p.page.Context(ctx).Eval(js)
	if err != nil {
		return 0, err
	}
	return obj.Value.Num(), nil
}

// FindElement returns the first element matching the CSS selector.
// Unlike rod's default behavior it does not wait for the element to
// appear; a missing element returns ENOTFOUND immediately.
func (p *Page) FindElement(ctx context.Context, selector string) (pagesnap.Element, error) {
	el, err := p.page.Context(ctx).Sleeper(rod.NotFoundSleeper).Element(selector)
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no element matches %q", selector)
	}
	return &Element{el: el}, nil
}

// FindElements returns all elements matching the CSS selector.
func (p *Page) FindElements(ctx context.Context, selector string) ([]pagesnap.Element, error) {
	els, err := p.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	result := make([]pagesnap.Element, 0, len(els))
	for _, el := range els {
		result = append(result, &Element{el: el})
	}
	return result, nil
}

// PageSource returns the current serialized HTML of the document.
func (p *Page) PageSource(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// PlainText returns the rendered text content of the document body.
func (p *Page) PlainText(ctx context.Context) (string, error) {
	el, err := p.page.Context(ctx).Sleeper(rod.NotFoundSleeper).Element("body")
	if err != nil {
		return "", pagesnap.Errorf(pagesnap.ENOTFOUND, "document has no body")
	}
	return el.Text()
}

// Screenshot captures the full page as PNG bytes.
func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	return p.page.Context(ctx).Screenshot(true, nil)
}

// Close releases the page.
func (p *Page) Close() error {
	return p.page.Close()
}

// Ensure Element implements pagesnap.Element at compile time.
var _ pagesnap.Element = (*Element)(nil)

// Element adapts a rod element to the pagesnap.Element interface.
type Element struct {
	el *rod.Element
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	value, err := e.el.Context(ctx).Attribute(name)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", pagesnap.Errorf(pagesnap.ENOTFOUND, "attribute %q is absent", name)
	}
	return *value, nil
}

// Text returns the rendered text content of the element.
func (e *Element) Text(ctx context.Context) (string, error) {
	return e.el.Context(ctx).Text()
}
