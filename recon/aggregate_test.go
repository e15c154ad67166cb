package recon_test

import (
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/recon"
	"github.com/stretchr/testify/assert"
)

func valid(kind recontact.Kind, raw, normalized string, source recontact.Source) recontact.ValidatedContact {
	return recontact.ValidatedContact{
		Kind:       kind,
		Raw:        raw,
		Normalized: normalized,
		Valid:      true,
		Source:     source,
	}
}

func TestAggregator_DeduplicatesEmailsByCase(t *testing.T) {
	t.Parallel()

	agg := recon.NewAggregator()
	agg.Add(
		valid(recontact.KindEmail, "A@B.com", "a@b.com", recontact.SourcePage),
		valid(recontact.KindEmail, "a@b.com", "a@b.com", recontact.SourceHarvester),
	)

	assert.Equal(t, []string{"a@b.com"}, agg.Unique(recontact.KindEmail))
	assert.Equal(t, 2, agg.Found(recontact.KindEmail))
	assert.Equal(t, 1, agg.Validated(recontact.KindEmail))
}

func TestAggregator_DeduplicatesPhonesByDigits(t *testing.T) {
	t.Parallel()

	// Different raw formats normalize to the same number.
	agg := recon.NewAggregator()
	agg.Add(
		valid(recontact.KindPhone, "(415) 555-0132", "+1 415-555-0132", recontact.SourcePage),
		valid(recontact.KindPhone, "+14155550132", "+1 415-555-0132", recontact.SourcePage),
	)

	assert.Equal(t, []string{"+1 415-555-0132"}, agg.Unique(recontact.KindPhone))
	assert.Equal(t, 2, agg.Found(recontact.KindPhone))
	assert.Equal(t, 1, agg.Validated(recontact.KindPhone))
}

func TestAggregator_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	agg := recon.NewAggregator()
	agg.Add(
		valid(recontact.KindEmail, "z@example.com", "z@example.com", recontact.SourcePage),
		valid(recontact.KindEmail, "a@example.com", "a@example.com", recontact.SourcePage),
		valid(recontact.KindEmail, "z@example.com", "z@example.com", recontact.SourceGuess),
	)

	assert.Equal(t, []string{"z@example.com", "a@example.com"}, agg.Unique(recontact.KindEmail))
}

func TestAggregator_InvalidContactsAreRejected(t *testing.T) {
	t.Parallel()

	agg := recon.NewAggregator()
	agg.Add(
		recontact.ValidatedContact{Kind: recontact.KindPhone, Raw: "12345", Source: recontact.SourcePage},
		valid(recontact.KindPhone, "+14155550132", "+1 415-555-0132", recontact.SourcePage),
	)

	assert.Equal(t, 1, agg.Found(recontact.KindPhone), "invalid contacts never count as found")
	assert.Equal(t, []string{"+1 415-555-0132"}, agg.Unique(recontact.KindPhone))
	if assert.Len(t, agg.Rejected(), 1) {
		assert.Equal(t, "12345", agg.Rejected()[0].Raw)
	}
}

func TestAggregator_Empty(t *testing.T) {
	t.Parallel()

	agg := recon.NewAggregator()

	assert.NotNil(t, agg.Unique(recontact.KindEmail))
	assert.Empty(t, agg.Unique(recontact.KindEmail))
	assert.Zero(t, agg.Found(recontact.KindEmail))
	assert.Zero(t, agg.Validated(recontact.KindPhone))
}

func TestDedupKey(t *testing.T) {
	t.Parallel()

	email := valid(recontact.KindEmail, "John.Doe@Example.COM", "john.doe@example.com", recontact.SourcePage)
	assert.Equal(t, "john.doe@example.com", recon.DedupKey(email))

	phone := valid(recontact.KindPhone, "(415) 555-0132", "+1 415-555-0132", recontact.SourcePage)
	assert.Equal(t, "14155550132", recon.DedupKey(phone))
}
