package mock

import (
	"context"

	"github.com/fwojciec/recontact"
)

var _ recontact.EmailHarvester = (*EmailHarvester)(nil)

// EmailHarvester is a mock implementation of recontact.EmailHarvester.
type EmailHarvester struct {
	HarvestFn func(ctx context.Context, domain string) ([]string, error)
}

func (h *EmailHarvester) Harvest(ctx context.Context, domain string) ([]string, error) {
	return h.HarvestFn(ctx, domain)
}
