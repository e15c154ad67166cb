package recontact

// LinkFinder discovers same-site links likely to carry contact
// information (contact, about, imprint pages).
type LinkFinder interface {
	// ContactLinks parses HTML and returns absolute URLs in discovery
	// order. The baseURL is used to resolve relative hrefs and to limit
	// results to the same host.
	ContactLinks(html string, baseURL string) ([]string, error)
}
