// Package regexp provides pattern matchers for contact candidates.
// Matchers deliberately over-match; downstream validators reject the
// false positives.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/recontact"
)

// Ensure matchers implement recontact.Matcher at compile time.
var (
	_ recontact.Matcher = (*EmailMatcher)(nil)
	_ recontact.Matcher = (*PhoneMatcher)(nil)
)

// emailPatterns match the general email shape plus the common
// [at] / (at) obfuscations seen on scraped pages.
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+\[at\][A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+\(at\)[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
}

var obfuscationReplacer = strings.NewReplacer("[at]", "@", "(at)", "@")

// matchUnclaimed runs patterns in priority order and drops any match
// overlapping a span an earlier pattern already claimed, so one
// occurrence in the text yields one match even when several patterns
// cover it.
func matchUnclaimed(patterns []*regexp.Regexp, text string) []string {
	var claimed [][2]int
	var out []string
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if overlapsClaimed(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			out = append(out, text[loc[0]:loc[1]])
		}
	}
	return out
}

func overlapsClaimed(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

// EmailMatcher finds candidate email addresses in text.
// Matches are case-preserving; normalization happens during validation.
type EmailMatcher struct{}

// NewEmailMatcher creates a new EmailMatcher.
func NewEmailMatcher() *EmailMatcher {
	return &EmailMatcher{}
}

// Kind returns the contact kind this matcher produces.
func (m *EmailMatcher) Kind() recontact.Kind { return recontact.KindEmail }

// Match scans text and returns email candidates in pattern-priority
// order. Overlapping matches across patterns collapse to one candidate.
func (m *EmailMatcher) Match(text string) []recontact.Candidate {
	var out []recontact.Candidate
	for _, match := range matchUnclaimed(emailPatterns, text) {
		out = append(out, recontact.Candidate{
			Kind:   recontact.KindEmail,
			Raw:    obfuscationReplacer.Replace(match),
			Source: recontact.SourcePage,
		})
	}
	return out
}

// phonePatterns match international and common national phone formats.
// Ordered most-specific first: matchUnclaimed suppresses the narrower
// patterns over spans the international pattern already consumed, so
// "+1 (415) 555-0132" is one candidate, not one per pattern.
var phonePatterns = []*regexp.Regexp{
	// +CC with optional separators: +1 (415) 555-0132, +44 20 7946 0958
	regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{1,4}[\s.-]?\d{1,4}[\s.-]?\d{0,4}`),
	// US format with area code parentheses: (415) 555-0132
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[\s-]?\d{4}`),
	// Separated national format: 415-555-0132
	regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
	// Bare digit runs
	regexp.MustCompile(`\b\d{7,15}\b`),
}

// PhoneMatcher finds candidate phone numbers in text. Candidates keep
// their original formatting; only matches with a plausible number of
// significant digits (7-15) are emitted.
type PhoneMatcher struct{}

// NewPhoneMatcher creates a new PhoneMatcher.
func NewPhoneMatcher() *PhoneMatcher {
	return &PhoneMatcher{}
}

// Kind returns the contact kind this matcher produces.
func (m *PhoneMatcher) Kind() recontact.Kind { return recontact.KindPhone }

// Match scans text and returns phone candidates in pattern-priority
// order. Overlapping matches across patterns collapse to one candidate.
func (m *PhoneMatcher) Match(text string) []recontact.Candidate {
	var out []recontact.Candidate
	for _, match := range matchUnclaimed(phonePatterns, text) {
		match = strings.TrimSpace(match)
		digits := countDigits(match)
		if digits < 7 || digits > 15 {
			continue
		}
		out = append(out, recontact.Candidate{
			Kind:   recontact.KindPhone,
			Raw:    match,
			Source: recontact.SourcePage,
		})
	}
	return out
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
