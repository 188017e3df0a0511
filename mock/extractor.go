package mock

import "github.com/fwojciec/docqa"

var _ docqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docqa.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*docqa.Extraction, error)
}

func (e *Extractor) Extract(pageURL, html string) (*docqa.Extraction, error) {
	return e.ExtractFn(pageURL, html)
}
