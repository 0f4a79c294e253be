// Package capture orchestrates the single-page capture pipeline: dynamic
// load stabilization, metadata extraction, content isolation, Markdown
// rendering, and screenshot capture, assembled into one CrawlRecord.
package capture

import (
	"context"
	"strings"
	"time"

	"github.com/pagesnap/pagesnap"
)

// Pipeline captures one page per invocation. The pipeline runs strictly
// sequentially and owns its page handle for the duration of one run; the
// handle is always released, including after a fatal failure.
type Pipeline struct {
	Browser    pagesnap.Browser
	Stabilizer pagesnap.ScrollStabilizer
	Metadata   pagesnap.MetadataExtractor
	Extractor  pagesnap.Extractor
	Converter  pagesnap.Converter

	// Screenshots persists captured screenshots; nil disables capture.
	Screenshots pagesnap.ScreenshotStore

	// CleanupScript, when set, runs against the live DOM before the HTML
	// is read out, as a best-effort reduction of noise in the raw export.
	// The parsed-tree filter remains the authoritative cleanup.
	CleanupScript string
}

// Capture loads the URL and produces its normalized record.
//
// A page-load failure or the absence of any content root aborts the run
// with a coded error and no record. Every other step degrades to a
// null or empty value for its own output field only.
func (p *Pipeline) Capture(ctx context.Context, url string) (*pagesnap.CrawlRecord, error) {
	page, err := p.Browser.NewPage(ctx)
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	loadedURL, err := page.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	p.Stabilizer.Stabilize(ctx, page)

	meta := p.Metadata.ExtractMetadata(ctx, page)

	if p.CleanupScript != "" {
		_ = page.Eval(ctx, p.CleanupScript)
	}

	rawHTML, err := page.PageSource(ctx)
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "reading page source: %v", err)
	}

	content, err := p.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	var markdown string
	if md, err := p.Converter.Convert(content.ContentHTML); err == nil {
		markdown = md
	}

	var text string
	if t, err := page.PlainText(ctx); err == nil {
		text = strings.TrimSpace(t)
	}

	var screenshotURL *string
	if p.Screenshots != nil {
		if png, err := page.Screenshot(ctx); err == nil {
			if ref, err := p.Screenshots.SaveScreenshot(ctx, url, png); err == nil {
				screenshotURL = &ref
			}
		}
	}

	return &pagesnap.CrawlRecord{
		URL: url,
		Crawl: pagesnap.CrawlInfo{
			LoadedURL:   loadedURL,
			LoadedTime:  time.Now().UTC(),
			ReferrerURL: page.CurrentURL(),
			Depth:       0,
		},
		Metadata:      meta,
		ScreenshotURL: screenshotURL,
		Text:          text,
		HTML:          content.ContentHTML,
		Markdown:      markdown,
	}, nil
}
