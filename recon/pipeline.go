package recon

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/recontact"
)

// Pipeline runs one reconnaissance pass per target: fetch, profile
// scrape, text extraction, pattern matching, validation, OSINT merge,
// aggregation, and record assembly. A run holds no state between
// invocations, so callers may process targets concurrently with
// independent or shared Pipeline values.
type Pipeline struct {
	// Required collaborators.
	Fetcher recontact.Fetcher
	Rules   *recontact.Registry
	Builder *Builder

	// Optional collaborators. The pipeline degrades gracefully when any
	// of these are nil or fail: extraction falls back to raw HTML,
	// harvesting and enrichment are skipped with a log entry.
	Extractor   recontact.Extractor
	Converter   recontact.Converter
	Profiles    recontact.ProfileSource
	Links       recontact.LinkFinder
	Harvester   recontact.EmailHarvester
	Enricher    recontact.Enricher
	Guesser     func(name, domain string) []string
	RateLimiter *HostLimiter
	Logger      *slog.Logger

	// MaxPages caps the pages visited per run. Values above 1 enable
	// the contact-page crawl (requires Links).
	MaxPages int

	// Concurrency bounds parallel fetches during the crawl.
	Concurrency int
}

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	html     string
	text     string
	contacts []recontact.ValidatedContact
	profile  *recontact.Profile
}

// Run executes the pipeline for a target and returns the completed
// record. The record is only returned after assembly finishes; callers
// never observe a partially-built record. Finding no contacts is a valid
// outcome, not an error.
func (p *Pipeline) Run(ctx context.Context, target *recontact.Target) (*recontact.ContactRecord, error) {
	if p.Fetcher == nil || p.Rules == nil || p.Builder == nil {
		return nil, recontact.Errorf(recontact.EINTERNAL, "pipeline requires a fetcher, rules, and a builder")
	}
	if target == nil || target.URL == "" {
		return nil, recontact.Errorf(recontact.EINVALID, "target URL required")
	}

	agg := NewAggregator()
	profile := &recontact.Profile{}

	// The seed page is the run's anchor; a fetch failure here is fatal.
	seed, err := p.processPage(ctx, target.URL, true)
	if err != nil {
		return nil, err
	}
	agg.Add(seed.contacts...)
	profile.Merge(seed.profile)

	if p.MaxPages > 1 && p.Links != nil && seed.html != "" {
		p.crawlContactPages(ctx, target.URL, seed.html, agg, profile)
	}

	p.harvest(ctx, target.URL, agg)
	p.enrich(ctx, seed.text, profile)
	p.guess(target.URL, profile, agg)

	return p.Builder.Build(target.ID, target.URL, profile, agg), nil
}

// processPage fetches one page and returns its validated contacts and
// any profile fields it exposes. Empty page content is a valid empty
// result.
func (p *Pipeline) processPage(ctx context.Context, pageURL string, wantProfile bool) (*pageResult, error) {
	if p.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := p.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
				return nil, err
			}
		}
	}

	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	res := &pageResult{html: html, profile: &recontact.Profile{}}
	if strings.TrimSpace(html) == "" {
		return res, nil
	}

	if wantProfile && p.Profiles != nil {
		if pe := p.Profiles.GetForURL(pageURL); pe != nil {
			if prof, err := pe.ExtractProfile(html); err == nil {
				res.profile = prof
			} else {
				p.logger().Debug("profile extraction failed", "url", pageURL, "err", err)
			}
		}
	}

	if p.Extractor != nil {
		if extracted, err := p.Extractor.Extract(html); err == nil {
			res.text = extracted.Text
		} else {
			p.logger().Debug("text extraction failed", "url", pageURL, "err", err)
		}
	}

	// Match over the visible text (raw HTML when extraction yields
	// nothing), then over the markdown rendering, which surfaces
	// mailto:/tel: hrefs that never appear as visible text. A contact
	// present in both passes is one occurrence, so the markdown pass
	// only contributes candidates the text pass did not produce.
	corpus := res.text
	if corpus == "" {
		corpus = html
	}
	seen := make(map[recontact.Candidate]struct{})
	for _, c := range p.Rules.Match(corpus) {
		seen[c] = struct{}{}
		res.contacts = append(res.contacts, p.Rules.Validate(c))
	}
	if p.Converter != nil {
		if md, err := p.Converter.Convert(html); err == nil && md != "" {
			for _, c := range p.Rules.Match(md) {
				if _, ok := seen[c]; ok {
					continue
				}
				res.contacts = append(res.contacts, p.Rules.Validate(c))
			}
		}
	}

	return res, nil
}

// harvest merges OSINT tool output into the aggregate. Tool failures
// degrade the run to page-only results.
func (p *Pipeline) harvest(ctx context.Context, targetURL string, agg *Aggregator) {
	if p.Harvester == nil {
		return
	}

	domain, err := DomainFromURL(targetURL)
	if err != nil {
		p.logger().Warn("harvest skipped", "url", targetURL, "err", err)
		return
	}

	emails, err := p.Harvester.Harvest(ctx, domain)
	if err != nil {
		p.logger().Warn("harvest degraded", "domain", domain, "err", err)
		return
	}

	for _, email := range emails {
		agg.Add(p.Rules.Validate(recontact.Candidate{
			Kind:   recontact.KindEmail,
			Raw:    email,
			Source: recontact.SourceHarvester,
		}))
	}
}

// enrich fills missing profile fields from page text. Enricher failures
// never affect the run.
func (p *Pipeline) enrich(ctx context.Context, text string, profile *recontact.Profile) {
	if p.Enricher == nil || profile.Complete() || text == "" {
		return
	}

	prof, err := p.Enricher.Enrich(ctx, text)
	if err != nil {
		p.logger().Warn("enrichment degraded", "err", err)
		return
	}
	profile.Merge(prof)
}

// guess feeds generated name-based mailbox patterns through validation.
func (p *Pipeline) guess(targetURL string, profile *recontact.Profile, agg *Aggregator) {
	if p.Guesser == nil || profile.Name == nil {
		return
	}

	domain, err := DomainFromURL(targetURL)
	if err != nil {
		return
	}

	for _, email := range p.Guesser(*profile.Name, domain) {
		agg.Add(p.Rules.Validate(recontact.Candidate{
			Kind:   recontact.KindEmail,
			Raw:    email,
			Source: recontact.SourceGuess,
		}))
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
