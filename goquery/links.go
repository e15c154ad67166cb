package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recontact"
)

var _ recontact.LinkFinder = (*LinkFinder)(nil)

// contactHints are path and anchor-text fragments that mark pages likely
// to carry contact details. German variants (impressum, kontakt) matter
// because German sites are legally required to publish an imprint page.
var contactHints = []string{
	"contact",
	"kontakt",
	"impressum",
	"imprint",
	"about",
	"team",
	"people",
	"staff",
	"support",
	"legal",
}

// LinkFinder discovers contact-page links on a scraped page. Only
// same-host links are returned: following external links turns a
// targeted scan into an open crawl.
type LinkFinder struct{}

// NewLinkFinder creates a new LinkFinder.
func NewLinkFinder() *LinkFinder {
	return &LinkFinder{}
}

// ContactLinks parses HTML and returns absolute same-host URLs whose
// path or anchor text suggests a contact page, deduplicated in document
// order.
func (f *LinkFinder) ContactLinks(html, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, recontact.Errorf(recontact.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recontact.Errorf(recontact.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, tel:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if !isSameHost(base, resolved) {
			return
		}

		if !looksLikeContactPage(resolved, sel.Text()) {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// looksLikeContactPage checks the URL path and the anchor text against
// the contact hints.
func looksLikeContactPage(resolved, anchorText string) bool {
	var path string
	if u, err := url.Parse(resolved); err == nil {
		path = strings.ToLower(u.Path)
	}
	text := strings.ToLower(anchorText)

	for _, hint := range contactHints {
		if strings.Contains(path, hint) || strings.Contains(text, hint) {
			return true
		}
	}
	return false
}

// resolveURL resolves href against the base URL, stripping fragments.
// Self-referential links resolve to empty.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base
// URL. Exact host matching: subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be
// skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
