package theharvester_test

import (
	"context"
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/theharvester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvester_MissingBinary(t *testing.T) {
	t.Parallel()

	h := theharvester.NewHarvester(theharvester.WithBinary("definitely-not-installed-9f2a"))

	_, err := h.Harvest(context.Background(), "example.com")
	assert.Equal(t, recontact.EUNAVAILABLE, recontact.ErrorCode(err))
}

func TestHarvester_EmptyDomain(t *testing.T) {
	t.Parallel()

	h := theharvester.NewHarvester()

	_, err := h.Harvest(context.Background(), "")
	assert.Equal(t, recontact.EINVALID, recontact.ErrorCode(err))
}

func TestParseReport(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"emails": ["info@example.com", "sales@example.com", ""],
		"hosts": ["www.example.com"],
		"ips": ["192.0.2.1"]
	}`)

	emails, err := theharvester.ParseReport(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"info@example.com", "sales@example.com"}, emails, "empty entries are dropped")
}

func TestParseReport_NoEmails(t *testing.T) {
	t.Parallel()

	emails, err := theharvester.ParseReport([]byte(`{"hosts": []}`))
	require.NoError(t, err)

	assert.NotNil(t, emails)
	assert.Empty(t, emails)
}

func TestParseReport_Malformed(t *testing.T) {
	t.Parallel()

	_, err := theharvester.ParseReport([]byte(`not json`))
	assert.Error(t, err)
}
