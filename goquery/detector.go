// Package goquery provides CSS-selector based profile scraping and
// contact-page link discovery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/recontact"
)

var _ recontact.SiteDetector = (*Detector)(nil)

// Detector identifies professional-networking sites from their URL.
// Detection is host-based: page content varies too much across site
// redesigns to be a reliable signal, while hostnames are stable.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the site type for a URL.
// Returns SiteGeneric if the site is not recognized.
func (d *Detector) Detect(rawURL string) recontact.SiteType {
	u, err := url.Parse(rawURL)
	if err != nil {
		return recontact.SiteGeneric
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	switch {
	case matchesHost(host, "linkedin.com"):
		return recontact.SiteLinkedIn
	case matchesHost(host, "xing.com"):
		return recontact.SiteXing
	case matchesHost(host, "viadeo.com"):
		return recontact.SiteViadeo
	case matchesHost(host, "about.me"):
		return recontact.SiteAboutMe
	case matchesHost(host, "angel.co") || matchesHost(host, "wellfound.com"):
		return recontact.SiteAngelList
	case matchesHost(host, "crunchbase.com"):
		return recontact.SiteCrunchbase
	}

	return recontact.SiteGeneric
}

// matchesHost reports whether host is the domain itself or one of its
// subdomains.
func matchesHost(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
