package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/navdoc"
)

// Ensure LoggingNavigationSource implements navdoc.NavigationSource.
var _ navdoc.NavigationSource = (*LoggingNavigationSource)(nil)

// LoggingNavigationSource wraps a NavigationSource with logging.
type LoggingNavigationSource struct {
	next   navdoc.NavigationSource
	logger *slog.Logger
}

// NewLoggingNavigationSource creates a new LoggingNavigationSource.
func NewLoggingNavigationSource(next navdoc.NavigationSource, logger *slog.Logger) *LoggingNavigationSource {
	return &LoggingNavigationSource{next: next, logger: logger}
}

// Navigation delegates to the wrapped source and logs how many pages the
// returned tree lists.
func (s *LoggingNavigationSource) Navigation(ctx context.Context, siteURL string) (nav navdoc.Node, err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigation",
			"url", siteURL,
			"pages", len(navdoc.ExtractPages(nav)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigation(ctx, siteURL)
}
