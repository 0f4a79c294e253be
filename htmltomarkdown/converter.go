// Package htmltomarkdown converts cleaned HTML content to Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/pagesnap/pagesnap"
)

// headingCap clamps heading depth: deeper headings are rewritten at this
// level so deeply nested sites don't produce unreadable heading spam.
const headingCap = 4

var (
	// Matches headings deeper than headingCap.
	deepHeadingRE = regexp.MustCompile(`(?m)^#{5,} `)
	blankRunRE    = regexp.MustCompile(`\n{3,}`)
)

// Ensure Converter implements pagesnap.Converter at compile time.
var _ pagesnap.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Output is normalized: headings clamped to headingCap, runs of blank
// lines collapsed to a single blank line, document trimmed. Conversion is
// deterministic: identical input always yields identical output.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into normalized Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagesnap.Errorf(pagesnap.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(result), nil
}

// normalize applies the fixed whitespace and heading rules.
func normalize(markdown string) string {
	markdown = deepHeadingRE.ReplaceAllString(markdown, strings.Repeat("#", headingCap)+" ")
	markdown = blankRunRE.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
