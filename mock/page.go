package mock

import (
	"context"

	"github.com/pagesnap/pagesnap"
)

var _ pagesnap.Browser = (*Browser)(nil)

// Browser is a mock implementation of pagesnap.Browser.
type Browser struct {
	NewPageFn func(ctx context.Context) (pagesnap.PageHandle, error)
	CloseFn   func() error
}

func (b *Browser) NewPage(ctx context.Context) (pagesnap.PageHandle, error) {
	return b.NewPageFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

var _ pagesnap.PageHandle = (*PageHandle)(nil)

// PageHandle is a mock implementation of pagesnap.PageHandle.
// Unset function fields make the corresponding method a benign no-op so
// tests only wire what they assert on.
type PageHandle struct {
	LoadFn         func(ctx context.Context, url string) (string, error)
	CurrentURLFn   func() string
	TitleFn        func(ctx context.Context) (string, error)
	EvalFn         func(ctx context.Context, js string) error
	EvalNumberFn   func(ctx context.Context, js string) (float64, error)
	FindElementFn  func(ctx context.Context, selector string) (pagesnap.Element, error)
	FindElementsFn func(ctx context.Context, selector string) ([]pagesnap.Element, error)
	PageSourceFn   func(ctx context.Context) (string, error)
	PlainTextFn    func(ctx context.Context) (string, error)
	ScreenshotFn   func(ctx context.Context) ([]byte, error)
	CloseFn        func() error
}

func (p *PageHandle) Load(ctx context.Context, url string) (string, error) {
	if p.LoadFn == nil {
		return url, nil
	}
	return p.LoadFn(ctx, url)
}

func (p *PageHandle) CurrentURL() string {
	if p.CurrentURLFn == nil {
		return ""
	}
	return p.CurrentURLFn()
}

func (p *PageHandle) Title(ctx context.Context) (string, error) {
	if p.TitleFn == nil {
		return "", pagesnap.Errorf(pagesnap.ENOTFOUND, "no title")
	}
	return p.TitleFn(ctx)
}

func (p *PageHandle) Eval(ctx context.Context, js string) error {
	if p.EvalFn == nil {
		return nil
	}
	return p.EvalFn(ctx, js)
}

func (p *PageHandle) EvalNumber(ctx context.Context, js string) (float64, error) {
	if p.EvalNumberFn == nil {
		return 0, nil
	}
	return p.EvalNumberFn(ctx, js)
}

func (p *PageHandle) FindElement(ctx context.Context, selector string) (pagesnap.Element, error) {
	if p.FindElementFn == nil {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no element matches %q", selector)
	}
	return p.FindElementFn(ctx, selector)
}

func (p *PageHandle) FindElements(ctx context.Context, selector string) ([]pagesnap.Element, error) {
	if p.FindElementsFn == nil {
		return nil, nil
	}
	return p.FindElementsFn(ctx, selector)
}

func (p *PageHandle) PageSource(ctx context.Context) (string, error) {
	if p.PageSourceFn == nil {
		return "", nil
	}
	return p.PageSourceFn(ctx)
}

func (p *PageHandle) PlainText(ctx context.Context) (string, error) {
	if p.PlainTextFn == nil {
		return "", nil
	}
	return p.PlainTextFn(ctx)
}

func (p *PageHandle) Screenshot(ctx context.Context) ([]byte, error) {
	if p.ScreenshotFn == nil {
		return nil, pagesnap.Errorf(pagesnap.EUNAVAILABLE, "screenshot not available")
	}
	return p.ScreenshotFn(ctx)
}

func (p *PageHandle) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

var _ pagesnap.Element = (*Element)(nil)

// Element is a mock implementation of pagesnap.Element.
type Element struct {
	AttributeFn func(ctx context.Context, name string) (string, error)
	TextFn      func(ctx context.Context) (string, error)
}

func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	return e.AttributeFn(ctx, name)
}

func (e *Element) Text(ctx context.Context) (string, error) {
	return e.TextFn(ctx)
}
