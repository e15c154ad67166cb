package recontact

import (
	"context"
	"time"
)

// Metadata describes one reconnaissance run. Field names match the
// persisted JSON shape exactly.
type Metadata struct {
	SourceURL           string    `json:"source_url"`
	Name                *string   `json:"name"`
	Title               *string   `json:"title"`
	Company             *string   `json:"company"`
	Location            *string   `json:"location"`
	ExtractionTimestamp time.Time `json:"extraction_timestamp"`
	TotalEmailsFound    int       `json:"total_emails_found"`
	TotalPhonesFound    int       `json:"total_phones_found"`
	ValidatedEmails     int       `json:"validated_emails"`
	ValidatedPhones     int       `json:"validated_phones"`
}

// ContactRecord is the aggregate result of one reconnaissance run.
// Emails and phones are ordered-unique under their normalized form.
// A record is created once per run and never mutated after the pipeline
// completes.
type ContactRecord struct {
	ID          string    `json:"-"`
	TargetID    string    `json:"-"`
	Emails      []string  `json:"emails"`
	Phones      []string  `json:"phones"`
	Metadata    Metadata  `json:"metadata"`
	ContentHash string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
// The metadata count fields must equal the actual set sizes.
func (r *ContactRecord) Validate() error {
	if r.TargetID == "" {
		return Errorf(EINVALID, "record target ID required")
	}
	if r.Metadata.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if len(r.Emails) != r.Metadata.ValidatedEmails {
		return Errorf(EINVALID, "validated_emails=%d does not match %d emails", r.Metadata.ValidatedEmails, len(r.Emails))
	}
	if len(r.Phones) != r.Metadata.ValidatedPhones {
		return Errorf(EINVALID, "validated_phones=%d does not match %d phones", r.Metadata.ValidatedPhones, len(r.Phones))
	}
	return nil
}

// ContactRow is a flattened view of a single contact for tabular export.
type ContactRow struct {
	Kind      Kind
	Value     string
	SourceURL string
	Name      string
	Title     string
	Company   string
	Location  string
}

// Rows returns one row per contact, emails first, preserving set order.
func (r *ContactRecord) Rows() []ContactRow {
	row := ContactRow{
		SourceURL: r.Metadata.SourceURL,
		Name:      deref(r.Metadata.Name),
		Title:     deref(r.Metadata.Title),
		Company:   deref(r.Metadata.Company),
		Location:  deref(r.Metadata.Location),
	}

	rows := make([]ContactRow, 0, len(r.Emails)+len(r.Phones))
	for _, email := range r.Emails {
		er := row
		er.Kind = KindEmail
		er.Value = email
		rows = append(rows, er)
	}
	for _, phone := range r.Phones {
		pr := row
		pr.Kind = KindPhone
		pr.Value = phone
		rows = append(rows, pr)
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RecordService represents a service for managing contact records.
type RecordService interface {
	// CreateRecord persists a completed record.
	CreateRecord(ctx context.Context, rec *ContactRecord) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*ContactRecord, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*ContactRecord, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error

	// DeleteRecordsByTarget removes all records for a target.
	DeleteRecordsByTarget(ctx context.Context, targetID string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	TargetID  *string `json:"targetId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
