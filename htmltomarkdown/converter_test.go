package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("surfaces mailto hrefs as text", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="mailto:hidden@example.com">Email us</a></p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)

		assert.Contains(t, md, "hidden@example.com")
	})

	t.Run("surfaces tel hrefs as text", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="tel:+14155550132">Call us</a></p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)

		assert.Contains(t, md, "+14155550132")
	})

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Contact</h1><p>Reach the <strong>sales</strong> team.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)

		assert.Contains(t, md, "# Contact")
		assert.Contains(t, md, "**sales**")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")
		assert.Equal(t, recontact.EINVALID, recontact.ErrorCode(err))
	})
}
