// Package goquery provides selector-driven content isolation and noise
// filtering for captured pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesnap/pagesnap"
)

// Ensure Isolator implements pagesnap.Extractor at compile time.
var _ pagesnap.Extractor = (*Isolator)(nil)

// contentSelectors locate the main content region, in priority order.
// The first selector with a match wins; body is the final fallback.
var contentSelectors = []string{
	`main, [role="main"]`,
	`article, [role="article"], .post, .post-content, .article-body`,
	`body`,
}

// Isolator selects the main-content subtree of an HTML document and
// strips boilerplate using the noise rule set. Selection is deterministic:
// identical input always yields the same subtree.
type Isolator struct {
	rules []pagesnap.NoiseRule
}

// NewIsolator creates an Isolator with the default noise rules.
func NewIsolator() *Isolator {
	return &Isolator{rules: pagesnap.DefaultNoiseRules}
}

// Extract parses raw HTML, removes noise, and returns the content of the
// highest-priority content landmark. Returns ENOTFOUND when the document
// yields no content at all; that condition is fatal for a capture run.
func (iso *Isolator) Extract(rawHTML string) (*pagesnap.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	RemoveNoise(doc, iso.rules)

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no content root in document")
	}

	inner, err := content.Html()
	if err != nil {
		return nil, err
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "document has no content")
	}

	return &pagesnap.ExtractResult{
		Title:       title,
		ContentHTML: inner,
	}, nil
}
