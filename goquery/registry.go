package goquery

import "github.com/fwojciec/recontact"

var _ recontact.ProfileSource = (*Source)(nil)

// Source manages site-specific profile extractors and auto-detects the
// site from a page URL. It uses a SiteDetector to identify the site and
// returns the appropriate extractor, falling back to a generic extractor
// when the site is unknown or no specific extractor is registered.
type Source struct {
	detector   recontact.SiteDetector
	fallback   recontact.ProfileExtractor
	extractors map[recontact.SiteType]recontact.ProfileExtractor
}

// NewSource creates a new Source with the given detector and fallback
// extractor. The fallback is used when GetForURL cannot find a specific
// extractor for the detected site.
func NewSource(detector recontact.SiteDetector, fallback recontact.ProfileExtractor) *Source {
	return &Source{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[recontact.SiteType]recontact.ProfileExtractor),
	}
}

// DefaultSource creates a Source with every built-in site extractor
// registered and the generic extractor as fallback.
func DefaultSource() *Source {
	s := NewSource(NewDetector(), NewGenericExtractor())
	s.Register(recontact.SiteLinkedIn, NewLinkedInExtractor())
	s.Register(recontact.SiteXing, NewXingExtractor())
	s.Register(recontact.SiteViadeo, NewViadeoExtractor())
	s.Register(recontact.SiteAboutMe, NewAboutMeExtractor())
	s.Register(recontact.SiteAngelList, NewAngelListExtractor())
	s.Register(recontact.SiteCrunchbase, NewCrunchbaseExtractor())
	return s
}

// Get returns the extractor for a specific site type.
// Returns nil if no extractor is registered for the site.
func (s *Source) Get(site recontact.SiteType) recontact.ProfileExtractor {
	return s.extractors[site]
}

// GetForURL detects the site from the URL and returns the appropriate
// extractor. Falls back to the fallback extractor if the site is unknown
// or no extractor is registered for the detected site.
func (s *Source) GetForURL(url string) recontact.ProfileExtractor {
	if extractor, ok := s.extractors[s.detector.Detect(url)]; ok {
		return extractor
	}
	return s.fallback
}

// Register adds an extractor for a site type.
// If an extractor is already registered for the site, it is replaced.
func (s *Source) Register(site recontact.SiteType, extractor recontact.ProfileExtractor) {
	s.extractors[site] = extractor
}
