package bloom_test

import (
	"testing"

	"github.com/fwojciec/recontact/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd("https://example.com/contact"), "first visit is unseen")
	assert.True(t, f.TestAndAdd("https://example.com/contact"), "second visit is seen")
	assert.False(t, f.Seen("https://example.com/about"))
}

func TestSeenFilter_Count(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(1000, 0.01)
	f.TestAndAdd("https://example.com/a")
	f.TestAndAdd("https://example.com/b")
	f.TestAndAdd("https://example.com/a")

	assert.InDelta(t, 2, float64(f.Count()), 1)
}
