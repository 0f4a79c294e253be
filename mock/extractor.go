package mock

import "github.com/pagesnap/pagesnap"

var _ pagesnap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesnap.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagesnap.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagesnap.ExtractResult, error) {
	return e.ExtractFn(html)
}
