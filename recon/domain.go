package recon

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/fwojciec/recontact"
)

// DomainFromURL derives the registered domain of a target URL for OSINT
// harvesting (www.example.co.uk → example.co.uk).
func DomainFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", recontact.Errorf(recontact.EINVALID, "invalid target URL %q", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", recontact.Errorf(recontact.EINVALID, "target URL %q has no host", rawURL)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Unlisted suffixes (intranet hosts, IPs) fall back to the
		// bare host.
		return strings.TrimPrefix(host, "www."), nil
	}
	return domain, nil
}
