package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/navdoc"
)

// Ensure SequentialFetcher implements navdoc.PageFetcher at compile time.
var _ navdoc.PageFetcher = (*SequentialFetcher)(nil)

// SequentialFetcher implements navdoc.PageFetcher by downloading one page
// at a time, in navigation order.
type SequentialFetcher struct {
	fetcher     navdoc.Fetcher
	limiter     navdoc.DomainLimiter
	logger      LogFunc
	retryDelays []time.Duration
}

// FetcherOption configures a SequentialFetcher.
type FetcherOption func(*SequentialFetcher)

// WithRetryDelays sets the pauses before each retry of a page.
// Defaults to DefaultRetryDelays() if not specified.
func WithRetryDelays(delays []time.Duration) FetcherOption {
	return func(sf *SequentialFetcher) {
		sf.retryDelays = delays
	}
}

// WithRateLimiter paces requests through the given limiter.
func WithRateLimiter(limiter navdoc.DomainLimiter) FetcherOption {
	return func(sf *SequentialFetcher) {
		sf.limiter = limiter
	}
}

// WithLogger receives the throttling notices emitted before each retry.
func WithLogger(logger LogFunc) FetcherOption {
	return func(sf *SequentialFetcher) {
		sf.logger = logger
	}
}

// NewSequentialFetcher creates a new SequentialFetcher on top of fetcher.
func NewSequentialFetcher(fetcher navdoc.Fetcher, opts ...FetcherOption) *SequentialFetcher {
	sf := &SequentialFetcher{fetcher: fetcher}
	for _, opt := range opts {
		opt(sf)
	}
	return sf
}

// FetchAll downloads the Markdown source of every path under siteURL.
// Pages whose retry is exhausted are reported through progress and skipped.
// Any other error stops the run and is returned with the pages fetched so far.
func (sf *SequentialFetcher) FetchAll(
	ctx context.Context,
	siteURL string,
	paths []string,
	progress navdoc.FetchProgressFunc,
) ([]*navdoc.Page, error) {
	var pages []*navdoc.Page
	total := len(paths)

	delays := sf.retryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	domain := hostOf(siteURL)

	for i, path := range paths {
		// Check for context cancellation before processing each page
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		if sf.limiter != nil {
			if err := sf.limiter.Wait(ctx, domain); err != nil {
				return pages, err
			}
		}

		pageURL := navdoc.PageURL(siteURL, path)
		content, err := FetchWithRetryDelays(ctx, pageURL, sf.fetcher.Fetch, sf.logger, delays)
		if err != nil && navdoc.ErrorCode(err) != navdoc.EUNAVAILABLE {
			return pages, fmt.Errorf("fetch %s: %w", pageURL, err)
		}

		if err == nil {
			pages = append(pages, &navdoc.Page{
				Path:    path,
				URL:     pageURL,
				Content: content,
			})
		}

		if progress != nil {
			progress(navdoc.FetchProgress{
				Path:      path,
				URL:       pageURL,
				Completed: i + 1,
				Total:     total,
				Succeeded: len(pages),
				Error:     err,
			})
		}
	}

	return pages, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
