package chromedp

import (
	"context"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/pagesnap/pagesnap"
)

// Ensure Page implements pagesnap.PageHandle at compile time.
var _ pagesnap.PageHandle = (*Page)(nil)

// Page adapts a chromedp tab to the pagesnap.PageHandle interface.
// A Page is owned by a single pipeline run and is not safe for
// concurrent use.
type Page struct {
	ctx        context.Context
	cancel     context.CancelFunc
	currentURL string
}

// run executes chromedp actions in the tab's context, carrying over any
// deadline from the caller's context.
func (p *Page) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := p.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(runCtx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

// Load navigates to the URL, waits for the document body, and returns
// the resolved URL after redirects.
func (p *Page) Load(ctx context.Context, url string) (string, error) {
	var loaded string
	err := p.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&loaded),
	)
	if err != nil {
		return "", pagesnap.Errorf(pagesnap.EUNAVAILABLE, "loading %s: %v", url, err)
	}
	p.currentURL = loaded
	return loaded, nil
}

// CurrentURL returns the page's resolved URL. It never fails; if the
// browser cannot be queried the last known URL is returned.
func (p *Page) CurrentURL() string {
	var location string
	if err := p.run(context.Background(), chromedp.Location(&location)); err != nil {
		return p.currentURL
	}
	return location
}

// Title returns the document title.
func (p *Page) Title(ctx context.Context) (string, error) {
	var title string
	if err := p.run(ctx, chromedp.Title(&title)); err != nil {
		return "", err
	}
	return title, nil
}

// Eval executes a JavaScript expression and discards its result.
func (p *Page) Eval(ctx context.Context, js string) error {
	return p.run(ctx, chromedp.Evaluate(js, nil))
}

// EvalNumber executes a JavaScript expression and returns its numeric result.
func (p *Page) EvalNumber(ctx context.Context, js string) (float64, error) {
	var result float64
	if err := p.run(ctx, chromedp.Evaluate(js, &result)); err != nil {
		return 0, err
	}
	return result, nil
}

// FindElement returns the first element matching the CSS selector.
func (p *Page) FindElement(ctx context.Context, selector string) (pagesnap.Element, error) {
	nodes, err := p.findNodes(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no element matches %q", selector)
	}
	return &Element{page: p, node: nodes[0]}, nil
}

// FindElements returns all elements matching the CSS selector.
func (p *Page) FindElements(ctx context.Context, selector string) ([]pagesnap.Element, error) {
	nodes, err := p.findNodes(ctx, selector)
	if err != nil {
		return nil, err
	}
	result := make([]pagesnap.Element, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, &Element{page: p, node: node})
	}
	return result, nil
}

func (p *Page) findNodes(ctx context.Context, selector string) ([]*cdp.Node, error) {
	var nodes []*cdp.Node
	err := p.run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)))
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// PageSource returns the current serialized HTML of the document.
func (p *Page) PageSource(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// PlainText returns the rendered text content of the document body.
func (p *Page) PlainText(ctx context.Context) (string, error) {
	var text string
	if err := p.run(ctx, chromedp.Text("body", &text, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return text, nil
}

// Screenshot captures the full page as PNG bytes.
func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	// Quality 100 makes chromedp produce PNG instead of JPEG.
	if err := p.run(ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the tab.
func (p *Page) Close() error {
	p.cancel()
	return nil
}

// Ensure Element implements pagesnap.Element at compile time.
var _ pagesnap.Element = (*Element)(nil)

// Element adapts a chromedp DOM node to the pagesnap.Element interface.
type Element struct {
	page *Page
	node *cdp.Node
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	// Node attributes are stored as a flat name/value pair list.
	attrs := e.node.Attributes
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == name {
			return attrs[i+1], nil
		}
	}
	return "", pagesnap.Errorf(pagesnap.ENOTFOUND, "attribute %q is absent", name)
}

// Text returns the rendered text content of the element.
func (e *Element) Text(ctx context.Context) (string, error) {
	var text string
	err := e.page.run(ctx, chromedp.Text([]cdp.NodeID{e.node.NodeID}, &text, chromedp.ByNodeID))
	if err != nil {
		return "", err
	}
	return text, nil
}
