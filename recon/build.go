package recon

import (
	"time"

	"github.com/fwojciec/recontact"
)

// Builder assembles ContactRecords from aggregated contacts and scraped
// profile metadata. It performs no validation of its own and is pure with
// respect to the clock: fixed inputs and a fixed clock yield identical
// records.
type Builder struct {
	clock func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock sets the clock used for extraction timestamps. Defaults to
// time.Now.
func WithClock(clock func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.clock = clock
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{clock: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the record for one reconnaissance run, stamping the
// extraction timestamp in UTC at build time.
func (b *Builder) Build(targetID, sourceURL string, profile *recontact.Profile, agg *Aggregator) *recontact.ContactRecord {
	rec := &recontact.ContactRecord{
		TargetID: targetID,
		Emails:   agg.Unique(recontact.KindEmail),
		Phones:   agg.Unique(recontact.KindPhone),
		Metadata: recontact.Metadata{
			SourceURL:           sourceURL,
			ExtractionTimestamp: b.clock().UTC(),
			TotalEmailsFound:    agg.Found(recontact.KindEmail),
			TotalPhonesFound:    agg.Found(recontact.KindPhone),
			ValidatedEmails:     agg.Validated(recontact.KindEmail),
			ValidatedPhones:     agg.Validated(recontact.KindPhone),
		},
	}
	if profile != nil {
		rec.Metadata.Name = profile.Name
		rec.Metadata.Title = profile.Title
		rec.Metadata.Company = profile.Company
		rec.Metadata.Location = profile.Location
	}
	return rec
}
