package mock

import (
	"context"

	"github.com/fwojciec/recontact"
)

var _ recontact.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of recontact.Enricher.
type Enricher struct {
	EnrichFn func(ctx context.Context, text string) (*recontact.Profile, error)
}

func (e *Enricher) Enrich(ctx context.Context, text string) (*recontact.Profile, error) {
	return e.EnrichFn(ctx, text)
}
