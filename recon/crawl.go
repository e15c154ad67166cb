package recon

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/bloom"
)

// Crawl configuration.
const (
	// crawlExpectedURLs sizes the Bloom seen-filter.
	crawlExpectedURLs = 1000
	// crawlFalsePositiveRate is the acceptable false positive rate for
	// page deduplication.
	crawlFalsePositiveRate = 0.01
	// defaultCrawlConcurrency bounds parallel fetches when no explicit
	// concurrency is configured.
	defaultCrawlConcurrency = 4
)

// crawlContactPages follows contact-page links discovered on the seed
// page (one level deep) and merges their contacts into the aggregate.
// Individual page failures are logged and skipped; the crawl never fails
// the run.
func (p *Pipeline) crawlContactPages(ctx context.Context, baseURL, html string, agg *Aggregator, profile *recontact.Profile) {
	links, err := p.Links.ContactLinks(html, baseURL)
	if err != nil {
		p.logger().Debug("link discovery failed", "url", baseURL, "err", err)
		return
	}

	seen := bloom.NewSeenFilter(crawlExpectedURLs, crawlFalsePositiveRate)
	seen.TestAndAdd(baseURL)

	budget := p.MaxPages - 1
	queue := make([]string, 0, budget)
	for _, link := range links {
		if len(queue) >= budget {
			break
		}
		if seen.TestAndAdd(link) {
			continue
		}
		queue = append(queue, link)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = defaultCrawlConcurrency
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, link := range queue {
		g.Go(func() error {
			res, err := p.processPage(gctx, link, true)
			if err != nil {
				p.logger().Warn("contact page skipped", "url", link, "err", err)
				return nil
			}

			mu.Lock()
			agg.Add(res.contacts...)
			profile.Merge(res.profile)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
}
