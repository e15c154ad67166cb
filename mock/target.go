package mock

import (
	"context"

	"github.com/fwojciec/recontact"
)

var _ recontact.TargetService = (*TargetService)(nil)

// TargetService is a mock implementation of recontact.TargetService.
type TargetService struct {
	CreateTargetFn     func(ctx context.Context, target *recontact.Target) error
	FindTargetByIDFn   func(ctx context.Context, id string) (*recontact.Target, error)
	FindTargetByNameFn func(ctx context.Context, name string) (*recontact.Target, error)
	FindTargetsFn      func(ctx context.Context, filter recontact.TargetFilter) ([]*recontact.Target, error)
	UpdateTargetFn     func(ctx context.Context, id string, upd recontact.TargetUpdate) (*recontact.Target, error)
	DeleteTargetFn     func(ctx context.Context, id string) error
}

func (s *TargetService) CreateTarget(ctx context.Context, target *recontact.Target) error {
	return s.CreateTargetFn(ctx, target)
}

func (s *TargetService) FindTargetByID(ctx context.Context, id string) (*recontact.Target, error) {
	return s.FindTargetByIDFn(ctx, id)
}

func (s *TargetService) FindTargetByName(ctx context.Context, name string) (*recontact.Target, error) {
	return s.FindTargetByNameFn(ctx, name)
}

func (s *TargetService) FindTargets(ctx context.Context, filter recontact.TargetFilter) ([]*recontact.Target, error) {
	return s.FindTargetsFn(ctx, filter)
}

func (s *TargetService) UpdateTarget(ctx context.Context, id string, upd recontact.TargetUpdate) (*recontact.Target, error) {
	return s.UpdateTargetFn(ctx, id, upd)
}

func (s *TargetService) DeleteTarget(ctx context.Context, id string) error {
	return s.DeleteTargetFn(ctx, id)
}
