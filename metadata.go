package pagesnap

import (
	"context"
	"fmt"
)

// MetadataExtractor reads document-level descriptive fields from a live
// page. Every field is looked up independently: a missing element or
// attribute yields a nil field and never affects the other lookups.
// Missing metadata is an expected, common case, not an error.
type MetadataExtractor struct{}

// ExtractMetadata performs the per-field lookups against the page.
// CanonicalURL is always set from the page's current resolved URL.
func (e *MetadataExtractor) ExtractMetadata(ctx context.Context, page PageHandle) PageMetadata {
	var meta PageMetadata

	if title, err := page.Title(ctx); err == nil && title != "" {
		meta.Title = &title
	}

	meta.Description = metaContent(ctx, page, "description")
	meta.Author = metaContent(ctx, page, "author")
	meta.Keywords = metaContent(ctx, page, "keywords")

	if lang := elementAttribute(ctx, page, "html", "lang"); lang != nil {
		meta.LanguageCode = lang
	}

	meta.CanonicalURL = page.CurrentURL()

	return meta
}

// metaContent reads the content attribute of a <meta name="..."> tag.
// Returns nil when the tag or the attribute is absent.
func metaContent(ctx context.Context, page PageHandle, name string) *string {
	return elementAttribute(ctx, page, fmt.Sprintf("meta[name=%q]", name), "content")
}

// elementAttribute reads one attribute of the first element matching the
// selector. Returns nil when the element or the attribute is absent.
func elementAttribute(ctx context.Context, page PageHandle, selector, attr string) *string {
	el, err := page.FindElement(ctx, selector)
	if err != nil {
		return nil
	}
	value, err := el.Attribute(ctx, attr)
	if err != nil || value == "" {
		return nil
	}
	return &value
}
