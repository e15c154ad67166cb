package mock

import "github.com/fwojciec/recontact"

var _ recontact.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor is a mock implementation of recontact.ProfileExtractor.
type ProfileExtractor struct {
	ExtractProfileFn func(html string) (*recontact.Profile, error)
	NameFn           func() string
}

func (e *ProfileExtractor) ExtractProfile(html string) (*recontact.Profile, error) {
	return e.ExtractProfileFn(html)
}

func (e *ProfileExtractor) Name() string {
	return e.NameFn()
}

var _ recontact.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of recontact.SiteDetector.
type SiteDetector struct {
	DetectFn func(url string) recontact.SiteType
}

func (d *SiteDetector) Detect(url string) recontact.SiteType {
	return d.DetectFn(url)
}

var _ recontact.ProfileSource = (*ProfileSource)(nil)

// ProfileSource is a mock implementation of recontact.ProfileSource.
type ProfileSource struct {
	GetFn       func(site recontact.SiteType) recontact.ProfileExtractor
	GetForURLFn func(url string) recontact.ProfileExtractor
	RegisterFn  func(site recontact.SiteType, extractor recontact.ProfileExtractor)
}

func (s *ProfileSource) Get(site recontact.SiteType) recontact.ProfileExtractor {
	return s.GetFn(site)
}

func (s *ProfileSource) GetForURL(url string) recontact.ProfileExtractor {
	return s.GetForURLFn(url)
}

func (s *ProfileSource) Register(site recontact.SiteType, extractor recontact.ProfileExtractor) {
	s.RegisterFn(site, extractor)
}
