package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recontact"
)

var _ recontact.ProfileExtractor = (*ProfileExtractor)(nil)

// fieldSelectors lists the CSS selectors tried, in order, for each
// profile field. The first selector yielding non-empty text wins.
type fieldSelectors struct {
	name     []string
	title    []string
	company  []string
	location []string
}

// ProfileExtractor scrapes profile metadata from HTML using per-site
// CSS selector lists. Missing fields are nil, never an error: profile
// pages routinely omit fields and site markup drifts over time.
type ProfileExtractor struct {
	name      string
	selectors fieldSelectors
}

// Name returns the extractor's identifier.
func (e *ProfileExtractor) Name() string {
	return e.name
}

// ExtractProfile parses HTML and returns whatever profile fields the
// page exposes.
func (e *ProfileExtractor) ExtractProfile(html string) (*recontact.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recontact.Errorf(recontact.EINVALID, "failed to parse HTML: %v", err)
	}

	return &recontact.Profile{
		Name:     firstText(doc, e.selectors.name),
		Title:    firstText(doc, e.selectors.title),
		Company:  firstText(doc, e.selectors.company),
		Location: firstText(doc, e.selectors.location),
	}, nil
}

// firstText returns the trimmed text of the first element matched by any
// of the selectors, or nil when none match.
func firstText(doc *goquery.Document, selectors []string) *string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			text = collapseWhitespace(text)
			return &text
		}
	}
	return nil
}

// collapseWhitespace normalizes interior runs of whitespace to single
// spaces. Scraped text frequently carries layout newlines and tabs.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
