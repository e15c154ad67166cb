package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/recontact"
)

// Ensure LoggingRecordService implements recontact.RecordService.
var _ recontact.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with persistence logging.
type LoggingRecordService struct {
	next   recontact.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next recontact.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *recontact.ContactRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record saved",
			"target_id", rec.TargetID,
			"emails", len(rec.Emails),
			"phones", len(rec.Phones),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*recontact.ContactRecord, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter recontact.RecordFilter) ([]*recontact.ContactRecord, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record deleted",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}

// DeleteRecordsByTarget delegates to the wrapped service and logs the
// operation.
func (s *LoggingRecordService) DeleteRecordsByTarget(ctx context.Context, targetID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("records deleted for target",
			"target_id", targetID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecordsByTarget(ctx, targetID)
}
