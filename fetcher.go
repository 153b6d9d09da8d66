package navdoc

import "context"

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// A response other than 200 OK yields an EUNAVAILABLE error;
	// transport failures are returned as-is.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter paces requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
