package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/recontact"
)

// Ensure LoggingHarvester implements recontact.EmailHarvester.
var _ recontact.EmailHarvester = (*LoggingHarvester)(nil)

// LoggingHarvester wraps an EmailHarvester with per-run logging.
// Harvester runs are slow external-tool invocations, so the timing and
// outcome are worth a log line.
type LoggingHarvester struct {
	next   recontact.EmailHarvester
	logger *slog.Logger
}

// NewLoggingHarvester creates a new LoggingHarvester.
func NewLoggingHarvester(next recontact.EmailHarvester, logger *slog.Logger) *LoggingHarvester {
	return &LoggingHarvester{next: next, logger: logger}
}

// Harvest delegates to the wrapped harvester and logs the operation.
func (h *LoggingHarvester) Harvest(ctx context.Context, domain string) (emails []string, err error) {
	defer func(begin time.Time) {
		h.logger.Info("osint harvest",
			"domain", domain,
			"count", len(emails),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return h.next.Harvest(ctx, domain)
}
