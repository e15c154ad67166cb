// Package trafilatura extracts the visible text of HTML pages for
// pattern matching.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/recontact"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements recontact.Extractor at compile time.
var _ recontact.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract visible content from HTML.
// Boilerplate removal cuts false positives: digit runs in script blocks
// and tracking URLs otherwise match the phone patterns.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the visible content.
func (e *Extractor) Extract(rawHTML string) (*recontact.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, recontact.Errorf(recontact.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &recontact.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
