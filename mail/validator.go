// Package mail provides syntactic email validation and an optional DNS
// deliverability check.
package mail

import (
	"net/mail"
	"strings"

	"github.com/fwojciec/recontact"
)

// Ensure Validator implements recontact.Validator at compile time.
var _ recontact.Validator = (*Validator)(nil)

// Validator validates email candidates. Validation is purely syntactic
// and deterministic: RFC-plausible address structure plus a valid domain
// label sequence. The normalized form is the lower-cased address, which
// is also the de-duplication key downstream.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Kind returns the contact kind this validator accepts.
func (v *Validator) Kind() recontact.Kind { return recontact.KindEmail }

// Validate returns the validation outcome for an email candidate.
// Malformed input is a normal negative result, never an error.
func (v *Validator) Validate(c recontact.Candidate) recontact.ValidatedContact {
	out := recontact.ValidatedContact{
		Kind:   recontact.KindEmail,
		Raw:    c.Raw,
		Source: c.Source,
	}

	addr := strings.TrimSpace(c.Raw)
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return out
	}

	local, domain, ok := strings.Cut(parsed.Address, "@")
	if !ok || local == "" || !validDomain(domain) {
		return out
	}

	out.Normalized = strings.ToLower(parsed.Address)
	out.Valid = true
	return out
}

// validDomain checks the domain label sequence: at least two labels,
// each 1-63 characters of letters, digits, and interior hyphens, with an
// alphabetic top-level label.
func validDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !isAlnumOrHyphen(r) {
				return false
			}
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !isAlpha(r) {
			return false
		}
	}
	return true
}

func isAlnumOrHyphen(r rune) bool {
	return r == '-' || isAlpha(r) || (r >= '0' && r <= '9')
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
