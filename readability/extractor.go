// Package readability provides content extraction backed by the Mozilla
// readability algorithm. It is an alternative engine to the default
// selector-based isolator and works better on long-form article pages.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pagesnap/pagesnap"
)

// Ensure Extractor implements pagesnap.Extractor at compile time.
var _ pagesnap.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*pagesnap.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagesnap.Errorf(pagesnap.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "document has no content")
	}

	return &pagesnap.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
