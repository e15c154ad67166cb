package etree_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *recontact.ContactRecord {
	name := "John Doe"
	return &recontact.ContactRecord{
		TargetID: "t1",
		Emails:   []string{"john.doe@example.com"},
		Phones:   []string{"+1 415-555-0132"},
		Metadata: recontact.Metadata{
			SourceURL:           "https://example.com/team",
			Name:                &name,
			ExtractionTimestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			TotalEmailsFound:    2,
			TotalPhonesFound:    1,
			ValidatedEmails:     1,
			ValidatedPhones:     1,
		},
	}
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := etree.NewExporter().Export(&buf, []*recontact.ContactRecord{testRecord()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<report>")
	assert.Contains(t, out, "<email>john.doe@example.com</email>")
	assert.Contains(t, out, "<phone>+1 415-555-0132</phone>")
	assert.Contains(t, out, "<source_url>https://example.com/team</source_url>")
	assert.Contains(t, out, "<name>John Doe</name>")
	assert.Contains(t, out, "<extraction_timestamp>2025-06-01T12:00:00Z</extraction_timestamp>")
	assert.Contains(t, out, "<total_emails_found>2</total_emails_found>")
	assert.NotContains(t, out, "<title>", "absent profile fields are omitted")
}

func TestExporter_Export_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := etree.NewExporter().Export(&buf, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<report/>")
}
