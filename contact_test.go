package recontact_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMatcher matches every whitespace-separated token as a candidate.
type stubMatcher struct {
	kind recontact.Kind
}

func (m *stubMatcher) Kind() recontact.Kind { return m.kind }

func (m *stubMatcher) Match(text string) []recontact.Candidate {
	var out []recontact.Candidate
	for _, tok := range strings.Fields(text) {
		out = append(out, recontact.Candidate{Kind: m.kind, Raw: tok, Source: recontact.SourcePage})
	}
	return out
}

// stubValidator accepts everything and normalizes to lower case.
type stubValidator struct {
	kind recontact.Kind
}

func (v *stubValidator) Kind() recontact.Kind { return v.kind }

func (v *stubValidator) Validate(c recontact.Candidate) recontact.ValidatedContact {
	return recontact.ValidatedContact{
		Kind:       c.Kind,
		Raw:        c.Raw,
		Normalized: strings.ToLower(c.Raw),
		Valid:      true,
		Source:     c.Source,
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("registers rules in order", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindEmail},
			Validator: &stubValidator{kind: recontact.KindEmail},
		}))
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindPhone},
			Validator: &stubValidator{kind: recontact.KindPhone},
		}))

		assert.Equal(t, []recontact.Kind{recontact.KindEmail, recontact.KindPhone}, r.Kinds())
	})

	t.Run("rejects kind mismatch", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		err := r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindEmail},
			Validator: &stubValidator{kind: recontact.KindPhone},
		})
		require.Error(t, err)
		assert.Equal(t, recontact.EINVALID, recontact.ErrorCode(err))
	})

	t.Run("rejects missing matcher or validator", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		err := r.Register(recontact.Rule{Matcher: &stubMatcher{kind: recontact.KindEmail}})
		require.Error(t, err)
		assert.Equal(t, recontact.EINVALID, recontact.ErrorCode(err))
	})

	t.Run("new kind does not disturb existing rules", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindEmail},
			Validator: &stubValidator{kind: recontact.KindEmail},
		}))

		const social recontact.Kind = "social"
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: social},
			Validator: &stubValidator{kind: social},
		}))

		_, ok := r.Get(recontact.KindEmail)
		assert.True(t, ok)
		_, ok = r.Get(social)
		assert.True(t, ok)
	})
}

func TestRegistry_Match(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindEmail},
			Validator: &stubValidator{kind: recontact.KindEmail},
		}))

		first := r.Match("a b c")
		second := r.Match("a b c")
		assert.Equal(t, first, second)
	})

	t.Run("empty text yields no candidates", func(t *testing.T) {
		t.Parallel()

		r := recontact.NewRegistry()
		require.NoError(t, r.Register(recontact.Rule{
			Matcher:   &stubMatcher{kind: recontact.KindEmail},
			Validator: &stubValidator{kind: recontact.KindEmail},
		}))

		assert.Empty(t, r.Match(""))
	})
}

func TestRegistry_Validate_UnknownKind(t *testing.T) {
	t.Parallel()

	r := recontact.NewRegistry()
	vc := r.Validate(recontact.Candidate{Kind: "telegram", Raw: "@someone"})

	assert.False(t, vc.Valid)
	assert.Equal(t, "@someone", vc.Raw)
	assert.Empty(t, vc.Normalized)
}
