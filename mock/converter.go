package mock

import "github.com/fwojciec/recontact"

var _ recontact.Converter = (*Converter)(nil)

// Converter is a mock implementation of recontact.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
