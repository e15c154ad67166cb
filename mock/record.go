package mock

import (
	"context"

	"github.com/fwojciec/recontact"
)

var _ recontact.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of recontact.RecordService.
type RecordService struct {
	CreateRecordFn          func(ctx context.Context, rec *recontact.ContactRecord) error
	FindRecordByIDFn        func(ctx context.Context, id string) (*recontact.ContactRecord, error)
	FindRecordsFn           func(ctx context.Context, filter recontact.RecordFilter) ([]*recontact.ContactRecord, error)
	DeleteRecordFn          func(ctx context.Context, id string) error
	DeleteRecordsByTargetFn func(ctx context.Context, targetID string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *recontact.ContactRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*recontact.ContactRecord, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter recontact.RecordFilter) ([]*recontact.ContactRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

func (s *RecordService) DeleteRecordsByTarget(ctx context.Context, targetID string) error {
	return s.DeleteRecordsByTargetFn(ctx, targetID)
}
