// Package phonenumbers validates phone candidates against regional
// numbering plans using the Go port of Google's libphonenumber.
package phonenumbers

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/fwojciec/recontact"
)

// DefaultRegion is the numbering plan assumed for candidates without an
// explicit country code. Candidates with a leading + carry their own
// country code and ignore the region entirely.
const DefaultRegion = "US"

// Ensure Validator implements recontact.Validator at compile time.
var _ recontact.Validator = (*Validator)(nil)

// Validator validates phone candidates. A candidate is valid only if it
// parses to a dialable number for some region; the normalized form is
// libphonenumber's INTERNATIONAL format (+<country> <formatted-national>).
type Validator struct {
	region string
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegion sets the default region (ISO 3166-1 alpha-2) applied to
// candidates without a country code.
func WithRegion(region string) Option {
	return func(v *Validator) {
		v.region = strings.ToUpper(region)
	}
}

// NewValidator creates a new Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{region: DefaultRegion}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Kind returns the contact kind this validator accepts.
func (v *Validator) Kind() recontact.Kind { return recontact.KindPhone }

// Validate returns the validation outcome for a phone candidate.
// Parse failures and implausible numbers are normal negative results;
// the raw string is kept for diagnostics.
func (v *Validator) Validate(c recontact.Candidate) recontact.ValidatedContact {
	out := recontact.ValidatedContact{
		Kind:   recontact.KindPhone,
		Raw:    c.Raw,
		Source: c.Source,
	}

	raw := strings.TrimSpace(c.Raw)
	if raw == "" {
		return out
	}

	region := v.region
	if strings.HasPrefix(raw, "+") {
		// Explicit country code; the default region must not influence
		// the result.
		region = ""
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return out
	}
	if !phonenumbers.IsValidNumber(num) {
		return out
	}

	out.Normalized = phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	out.Valid = true
	return out
}
