// Package recon orchestrates the contact-extraction pipeline: pattern
// matching, validation, cross-source aggregation, and record assembly.
package recon

import (
	"strings"

	"github.com/fwojciec/recontact"
)

// Aggregator merges validated contacts from multiple sources, removing
// duplicates per kind while preserving first-seen order. Invalid contacts
// are retained in a diagnostics list but never counted.
//
// An Aggregator is not safe for concurrent use; callers coordinate access.
type Aggregator struct {
	order    map[recontact.Kind][]string
	byKey    map[recontact.Kind]map[string]recontact.ValidatedContact
	found    map[recontact.Kind]int
	rejected []recontact.ValidatedContact
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		order: make(map[recontact.Kind][]string),
		byKey: make(map[recontact.Kind]map[string]recontact.ValidatedContact),
		found: make(map[recontact.Kind]int),
	}
}

// DedupKey returns the canonical comparison key for a valid contact:
// the lower-cased address for emails, the digit sequence of the
// normalized form (country code included) for phones.
func DedupKey(vc recontact.ValidatedContact) string {
	switch vc.Kind {
	case recontact.KindPhone:
		return digitsOf(vc.Normalized)
	default:
		return strings.ToLower(vc.Normalized)
	}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Add records validated contacts. Invalid contacts go to the diagnostics
// list; valid ones increment the pre-dedup found count and join the
// unique set if their key is unseen. When the same key arrives from
// different sources the first instance is retained.
func (a *Aggregator) Add(contacts ...recontact.ValidatedContact) {
	for _, vc := range contacts {
		if !vc.Valid {
			a.rejected = append(a.rejected, vc)
			continue
		}

		a.found[vc.Kind]++

		key := DedupKey(vc)
		seen, ok := a.byKey[vc.Kind]
		if !ok {
			seen = make(map[string]recontact.ValidatedContact)
			a.byKey[vc.Kind] = seen
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = vc
		a.order[vc.Kind] = append(a.order[vc.Kind], key)
	}
}

// Unique returns the normalized forms of the unique contacts of a kind
// in first-seen order. The result is never nil.
func (a *Aggregator) Unique(kind recontact.Kind) []string {
	keys := a.order[kind]
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, a.byKey[kind][key].Normalized)
	}
	return out
}

// Found returns the count of valid contacts of a kind before
// de-duplication.
func (a *Aggregator) Found(kind recontact.Kind) int {
	return a.found[kind]
}

// Validated returns the count of unique valid contacts of a kind.
func (a *Aggregator) Validated(kind recontact.Kind) int {
	return len(a.order[kind])
}

// Rejected returns the contacts that failed validation, for diagnostics.
func (a *Aggregator) Rejected() []recontact.ValidatedContact {
	return a.rejected
}
