package recontact

import "context"

// Profile holds metadata scraped from a professional page.
// Nil fields were not found on the page.
type Profile struct {
	Name     *string
	Title    *string
	Company  *string
	Location *string
}

// Complete returns true if every profile field is populated.
func (p *Profile) Complete() bool {
	return p.Name != nil && p.Title != nil && p.Company != nil && p.Location != nil
}

// Merge fills empty fields of p from other. Populated fields win; Merge
// never overwrites.
func (p *Profile) Merge(other *Profile) {
	if other == nil {
		return
	}
	if p.Name == nil {
		p.Name = other.Name
	}
	if p.Title == nil {
		p.Title = other.Title
	}
	if p.Company == nil {
		p.Company = other.Company
	}
	if p.Location == nil {
		p.Location = other.Location
	}
}

// SiteType identifies a professional-networking site.
type SiteType string

// Recognized professional sites.
const (
	SiteGeneric    SiteType = ""
	SiteLinkedIn   SiteType = "linkedin"
	SiteXing       SiteType = "xing"
	SiteViadeo     SiteType = "viadeo"
	SiteAboutMe    SiteType = "about_me"
	SiteAngelList  SiteType = "angel_list"
	SiteCrunchbase SiteType = "crunchbase"
)

// ProfileExtractor scrapes profile metadata from a page.
type ProfileExtractor interface {
	// ExtractProfile parses HTML and returns whatever profile fields
	// the page exposes. Missing fields are nil, not an error.
	ExtractProfile(html string) (*Profile, error)

	// Name returns the extractor's identifier (e.g., "linkedin", "generic").
	Name() string
}

// SiteDetector identifies the professional site a URL belongs to.
type SiteDetector interface {
	// Detect returns the site type for a URL.
	// Returns SiteGeneric if the site is not recognized.
	Detect(url string) SiteType
}

// ProfileSource selects the appropriate profile extractor for a page.
type ProfileSource interface {
	// Get returns the extractor for a specific site type.
	// Returns nil if no extractor is registered for the site.
	Get(site SiteType) ProfileExtractor

	// GetForURL detects the site from the URL and returns the appropriate
	// extractor, falling back to a generic extractor.
	GetForURL(url string) ProfileExtractor

	// Register adds an extractor for a site type.
	Register(site SiteType, extractor ProfileExtractor)
}

// Enricher fills profile fields from page text when selector-based
// scraping comes up empty. Enrichment is additive: the pipeline never
// depends on it for the core result.
type Enricher interface {
	Enrich(ctx context.Context, text string) (*Profile, error)
}
