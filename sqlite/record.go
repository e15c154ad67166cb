package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/recontact"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ recontact.RecordService = (*RecordService)(nil)

// RecordService implements recontact.RecordService using SQLite.
// Contact sets are stored as JSON arrays; the validated counts are
// derived from set sizes on read, so stored records can never drift out
// of the counts-match-sets invariant.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashRecord computes xxHash over the contact sets and returns a hex
// string. Used to spot re-scans that found nothing new.
func hashRecord(rec *recontact.ContactRecord) string {
	var b strings.Builder
	for _, email := range rec.Emails {
		b.WriteString(email)
		b.WriteByte('\n')
	}
	for _, phone := range rec.Phones {
		b.WriteString(phone)
		b.WriteByte('\n')
	}

	h := xxhash.Sum64String(b.String())
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(buf)
}

// CreateRecord persists a completed record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *recontact.ContactRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ContentHash = hashRecord(rec)
	rec.CreatedAt = time.Now().UTC()

	emails, err := json.Marshal(rec.Emails)
	if err != nil {
		return fmt.Errorf("failed to marshal emails: %w", err)
	}
	phones, err := json.Marshal(rec.Phones)
	if err != nil {
		return fmt.Errorf("failed to marshal phones: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (
			id, target_id, emails, phones, source_url,
			name, title, company, location,
			extraction_timestamp, total_emails_found, total_phones_found,
			content_hash, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.TargetID, string(emails), string(phones), rec.Metadata.SourceURL,
		rec.Metadata.Name, rec.Metadata.Title, rec.Metadata.Company, rec.Metadata.Location,
		rec.Metadata.ExtractionTimestamp.UTC().Format(time.RFC3339),
		rec.Metadata.TotalEmailsFound, rec.Metadata.TotalPhonesFound,
		rec.ContentHash, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*recontact.ContactRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRecords+" WHERE id = ?", id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, recontact.Errorf(recontact.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter recontact.RecordFilter) ([]*recontact.ContactRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectRecords)
	query.WriteString(" WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.TargetID != nil {
		query.WriteString(" AND target_id = ?")
		args = append(args, *filter.TargetID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*recontact.ContactRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return recontact.Errorf(recontact.ENOTFOUND, "record not found")
	}

	return nil
}

// DeleteRecordsByTarget removes all records for a target.
func (s *RecordService) DeleteRecordsByTarget(ctx context.Context, targetID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE target_id = ?", targetID)
	return err
}

const selectRecords = `
	SELECT id, target_id, emails, phones, source_url,
		name, title, company, location,
		extraction_timestamp, total_emails_found, total_phones_found,
		content_hash, created_at
	FROM records`

// scanRecord scans one record row. The scan function abstracts over
// sql.Row and sql.Rows.
func scanRecord(scan func(dest ...any) error) (*recontact.ContactRecord, error) {
	var rec recontact.ContactRecord
	var emails, phones, extractedAt, createdAt string

	err := scan(&rec.ID, &rec.TargetID, &emails, &phones, &rec.Metadata.SourceURL,
		&rec.Metadata.Name, &rec.Metadata.Title, &rec.Metadata.Company, &rec.Metadata.Location,
		&extractedAt, &rec.Metadata.TotalEmailsFound, &rec.Metadata.TotalPhonesFound,
		&rec.ContentHash, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(emails), &rec.Emails); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emails: %w", err)
	}
	if err := json.Unmarshal([]byte(phones), &rec.Phones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal phones: %w", err)
	}
	if rec.Emails == nil {
		rec.Emails = []string{}
	}
	if rec.Phones == nil {
		rec.Phones = []string{}
	}
	rec.Metadata.ValidatedEmails = len(rec.Emails)
	rec.Metadata.ValidatedPhones = len(rec.Phones)

	if rec.Metadata.ExtractionTimestamp, err = parseRFC3339(extractedAt, "extraction_timestamp"); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}
