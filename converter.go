package pagesnap

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML content into Markdown.
	// Conversion is a pure function: identical input always yields
	// identical output.
	Convert(html string) (string, error)
}
