// Package bloom provides probabilistic seen-page tracking for contact
// crawls.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter tracks visited URLs during a crawl. False positives are
// possible (a page may be skipped that was never visited); false
// negatives are not, so no page is ever processed twice.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd marks the URL as seen and reports whether it had already
// been marked.
func (s *SeenFilter) TestAndAdd(url string) bool {
	return s.f.TestAndAddString(url)
}

// Seen reports whether the URL has probably been marked.
func (s *SeenFilter) Seen(url string) bool {
	return s.f.TestString(url)
}

// Count returns the approximate number of URLs marked.
func (s *SeenFilter) Count() uint {
	return uint(s.f.ApproximatedSize())
}
