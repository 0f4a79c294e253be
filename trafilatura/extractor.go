// Package trafilatura provides content extraction backed by the
// trafilatura boilerplate-removal algorithm.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagesnap/pagesnap"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesnap.Extractor at compile time.
var _ pagesnap.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no extractable content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "document has no content")
	}

	return &pagesnap.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
