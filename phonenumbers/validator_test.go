package phonenumbers_test

import (
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/phonenumbers"
	"github.com/stretchr/testify/assert"
)

func candidate(raw string) recontact.Candidate {
	return recontact.Candidate{Kind: recontact.KindPhone, Raw: raw, Source: recontact.SourcePage}
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes international input", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator()
		got := v.Validate(candidate("+1 (415) 555-0132"))

		assert.True(t, got.Valid)
		assert.Equal(t, "+1 415-555-0132", got.Normalized)
	})

	t.Run("applies default region to national input", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator()
		got := v.Validate(candidate("(415) 555-0132"))

		assert.True(t, got.Valid)
		assert.Equal(t, "+1 415-555-0132", got.Normalized)
	})

	t.Run("honors configured region", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator(phonenumbers.WithRegion("gb"))
		got := v.Validate(candidate("020 7946 0958"))

		assert.True(t, got.Valid)
		assert.Equal(t, "+44 20 7946 0958", got.Normalized)
	})

	t.Run("country code overrides default region", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator() // US default
		got := v.Validate(candidate("+44 20 7946 0958"))

		assert.True(t, got.Valid)
		assert.Equal(t, "+44 20 7946 0958", got.Normalized)
	})

	t.Run("rejects implausible numbers without error", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator()
		for _, raw := range []string{
			"",
			"12345",
			"0000000000",
			"not a number",
			"+999 123",
		} {
			got := v.Validate(candidate(raw))
			assert.False(t, got.Valid, "expected %q to be invalid", raw)
			assert.Empty(t, got.Normalized)
			assert.Equal(t, raw, got.Raw, "raw string kept for diagnostics")
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator()
		first := v.Validate(candidate("+1 (415) 555-0132"))
		second := v.Validate(candidate(first.Normalized))

		assert.True(t, second.Valid)
		assert.Equal(t, first.Normalized, second.Normalized)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		v := phonenumbers.NewValidator()
		c := candidate("415-555-0132")
		assert.Equal(t, v.Validate(c), v.Validate(c))
	})
}
