package recontact

import "context"

// EmailHarvester gathers candidate email addresses for a domain from
// external OSINT sources. Harvested strings are candidates only; they go
// through the same validation as pattern matches.
//
// Implementations return EUNAVAILABLE when the backing tool is missing or
// times out so callers can degrade to page-only results.
type EmailHarvester interface {
	Harvest(ctx context.Context, domain string) (emails []string, err error)
}
