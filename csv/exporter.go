// Package csv exports contact records as CSV.
package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/fwojciec/recontact"
)

// Ensure Exporter implements recontact.RecordExporter at compile time.
var _ recontact.RecordExporter = (*Exporter)(nil)

// header is the column layout, one row per contact.
var header = []string{"Type", "Value", "Source_URL", "Name", "Title", "Company", "Location"}

// Exporter writes records as CSV with one row per contact.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the records to w. Records with no contacts contribute no
// rows but the header is always written.
func (e *Exporter) Export(w io.Writer, records []*recontact.ContactRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		for _, row := range rec.Rows() {
			if err := cw.Write([]string{
				typeLabel(row.Kind),
				row.Value,
				row.SourceURL,
				row.Name,
				row.Title,
				row.Company,
				row.Location,
			}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// typeLabel renders the kind title-cased for the Type column
// (Email, Phone).
func typeLabel(kind recontact.Kind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
