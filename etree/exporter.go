// Package etree exports contact records as XML.
package etree

import (
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/recontact"
)

// Ensure Exporter implements recontact.RecordExporter at compile time.
var _ recontact.RecordExporter = (*Exporter)(nil)

// Exporter writes records as an indented XML report.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the records to w.
func (e *Exporter) Export(w io.Writer, records []*recontact.ContactRecord) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	for _, rec := range records {
		addRecord(root, rec)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func addRecord(parent *etree.Element, rec *recontact.ContactRecord) {
	el := parent.CreateElement("record")

	emails := el.CreateElement("emails")
	for _, email := range rec.Emails {
		emails.CreateElement("email").SetText(email)
	}

	phones := el.CreateElement("phones")
	for _, phone := range rec.Phones {
		phones.CreateElement("phone").SetText(phone)
	}

	meta := el.CreateElement("metadata")
	meta.CreateElement("source_url").SetText(rec.Metadata.SourceURL)
	addOptional(meta, "name", rec.Metadata.Name)
	addOptional(meta, "title", rec.Metadata.Title)
	addOptional(meta, "company", rec.Metadata.Company)
	addOptional(meta, "location", rec.Metadata.Location)
	meta.CreateElement("extraction_timestamp").SetText(rec.Metadata.ExtractionTimestamp.Format(time.RFC3339))
	meta.CreateElement("total_emails_found").SetText(strconv.Itoa(rec.Metadata.TotalEmailsFound))
	meta.CreateElement("total_phones_found").SetText(strconv.Itoa(rec.Metadata.TotalPhonesFound))
	meta.CreateElement("validated_emails").SetText(strconv.Itoa(rec.Metadata.ValidatedEmails))
	meta.CreateElement("validated_phones").SetText(strconv.Itoa(rec.Metadata.ValidatedPhones))
}

// addOptional emits the element only when the field was found; absent
// fields are omitted rather than serialized empty.
func addOptional(parent *etree.Element, tag string, value *string) {
	if value == nil {
		return
	}
	parent.CreateElement(tag).SetText(*value)
}
