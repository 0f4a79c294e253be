package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesnap/pagesnap"
)

// RemoveNoise deletes every element matching the rules from the parsed
// document, along with its entire subtree. The rules are applied to the
// detached tree only, never to a live page; applying RemoveNoise to its
// own output removes nothing further.
func RemoveNoise(doc *goquery.Document, rules []pagesnap.NoiseRule) {
	for _, rule := range rules {
		doc.Find(rule.Selector()).Remove()
	}
}

// CleanHTML applies the noise rules to an HTML fragment and returns the
// cleaned fragment.
func CleanHTML(fragment string, rules []pagesnap.NoiseRule) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", pagesnap.Errorf(pagesnap.EINVALID, "failed to parse HTML fragment: %v", err)
	}

	RemoveNoise(doc, rules)

	// Fragments are parsed into a full document; return the body content.
	cleaned, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(cleaned), nil
}

// Ensure Filtered implements pagesnap.Extractor at compile time.
var _ pagesnap.Extractor = (*Filtered)(nil)

// Filtered wraps another Extractor and applies the noise rule set to its
// output, so every extraction engine produces content governed by the
// same rules.
type Filtered struct {
	next  pagesnap.Extractor
	rules []pagesnap.NoiseRule
}

// NewFiltered creates a Filtered extractor with the default noise rules.
func NewFiltered(next pagesnap.Extractor) *Filtered {
	return &Filtered{next: next, rules: pagesnap.DefaultNoiseRules}
}

// Extract delegates to the wrapped extractor and cleans its content HTML.
func (f *Filtered) Extract(rawHTML string) (*pagesnap.ExtractResult, error) {
	result, err := f.next.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanHTML(result.ContentHTML, f.rules)
	if err != nil {
		return nil, err
	}

	return &pagesnap.ExtractResult{
		Title:       result.Title,
		ContentHTML: cleaned,
	}, nil
}
