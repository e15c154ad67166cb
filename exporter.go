package recontact

import "io"

// RecordExporter writes contact records in an export format.
type RecordExporter interface {
	Export(w io.Writer, records []*ContactRecord) error
}
