package mock

import "github.com/fwojciec/recontact"

var _ recontact.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recontact.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*recontact.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*recontact.ExtractResult, error) {
	return e.ExtractFn(html)
}
