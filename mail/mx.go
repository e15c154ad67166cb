package mail

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/fwojciec/recontact"
)

// DefaultMXTimeout bounds a single mail-exchanger lookup.
const DefaultMXTimeout = 3 * time.Second

// MXChecker performs DNS mail-exchanger lookups for email domains.
// The result is advisory only: it must never feed into the syntactic
// validity decision, and lookup failures degrade rather than propagate.
type MXChecker struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// MXOption configures an MXChecker.
type MXOption func(*MXChecker)

// WithMXTimeout sets the per-lookup timeout.
func WithMXTimeout(d time.Duration) MXOption {
	return func(c *MXChecker) {
		c.timeout = d
	}
}

// WithResolver sets a custom DNS resolver.
func WithResolver(r *net.Resolver) MXOption {
	return func(c *MXChecker) {
		c.resolver = r
	}
}

// NewMXChecker creates a new MXChecker.
func NewMXChecker(opts ...MXOption) *MXChecker {
	c := &MXChecker{
		resolver: net.DefaultResolver,
		timeout:  DefaultMXTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports whether the address's domain publishes MX records.
// Returns (false, nil) when the domain definitively has none, and
// EUNAVAILABLE when DNS could not be consulted within the timeout.
func (c *MXChecker) Check(ctx context.Context, email string) (bool, error) {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return false, recontact.Errorf(recontact.EINVALID, "not an email address: %q", email)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, recontact.Errorf(recontact.EUNAVAILABLE, "MX lookup for %q failed: %s", domain, err)
	}

	return len(records) > 0, nil
}
