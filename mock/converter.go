package mock

import "github.com/pagesnap/pagesnap"

var _ pagesnap.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagesnap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
