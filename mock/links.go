package mock

import "github.com/fwojciec/recontact"

var _ recontact.LinkFinder = (*LinkFinder)(nil)

// LinkFinder is a mock implementation of recontact.LinkFinder.
type LinkFinder struct {
	ContactLinksFn func(html, baseURL string) ([]string, error)
}

func (f *LinkFinder) ContactLinks(html, baseURL string) ([]string, error) {
	return f.ContactLinksFn(html, baseURL)
}
