// Package theharvester integrates the theHarvester OSINT tool as an
// additional source of email candidates.
package theharvester

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fwojciec/recontact"
)

// Ensure Harvester implements recontact.EmailHarvester at compile time.
var _ recontact.EmailHarvester = (*Harvester)(nil)

// DefaultTimeout bounds a single theHarvester invocation. The tool
// queries many public sources and can hang on slow ones.
const DefaultTimeout = 5 * time.Minute

// DefaultSources is the source list passed to theHarvester.
const DefaultSources = "all"

// Harvester runs the theHarvester binary and parses its JSON report.
// Every failure mode (binary missing, timeout, non-zero exit, unreadable
// report) returns EUNAVAILABLE so callers can degrade to page-only
// results.
type Harvester struct {
	binary  string
	sources string
	timeout time.Duration
}

// Option configures a Harvester.
type Option func(*Harvester)

// WithBinary sets the binary name or path. Defaults to "theHarvester".
func WithBinary(binary string) Option {
	return func(h *Harvester) {
		h.binary = binary
	}
}

// WithSources sets the data sources passed via -b. Defaults to "all".
func WithSources(sources string) Option {
	return func(h *Harvester) {
		h.sources = sources
	}
}

// WithTimeout sets the per-invocation timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(h *Harvester) {
		h.timeout = timeout
	}
}

// NewHarvester creates a new Harvester.
func NewHarvester(opts ...Option) *Harvester {
	h := &Harvester{
		binary:  "theHarvester",
		sources: DefaultSources,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Harvest runs theHarvester against a domain and returns the email
// addresses it reports. The addresses are raw candidates; callers
// validate them like any other candidate.
func (h *Harvester) Harvest(ctx context.Context, domain string) ([]string, error) {
	if domain == "" {
		return nil, recontact.Errorf(recontact.EINVALID, "domain required")
	}

	binary, err := exec.LookPath(h.binary)
	if err != nil {
		return nil, recontact.Errorf(recontact.EUNAVAILABLE, "%s not found in PATH", h.binary)
	}

	dir, err := os.MkdirTemp("", "harvest")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	// theHarvester appends the format extension to the -f argument.
	outBase := filepath.Join(dir, "report")
	reportPath := outBase + ".json"

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "-d", domain, "-b", h.sources, "-f", outBase)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, recontact.Errorf(recontact.EUNAVAILABLE, "%s timed out after %s", h.binary, h.timeout)
		}
		return nil, recontact.Errorf(recontact.EUNAVAILABLE, "%s failed: %v: %s", h.binary, err, stderr.String())
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, recontact.Errorf(recontact.EUNAVAILABLE, "%s produced no report: %v", h.binary, err)
	}

	emails, err := ParseReport(data)
	if err != nil {
		return nil, recontact.Errorf(recontact.EUNAVAILABLE, "unreadable %s report: %v", h.binary, err)
	}
	return emails, nil
}
