// Package http provides an HTTP-based implementation of navdoc.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/navdoc"
)

// Ensure Fetcher implements navdoc.Fetcher at compile time.
var _ navdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using plain GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	proxy   *url.URL
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, leaves requests bounded only by their context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxy routes every request through the given proxy.
// Without it the standard proxy environment variables apply.
func WithProxy(proxy *url.URL) Option {
	return func(f *Fetcher) {
		f.proxy = proxy
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if f.proxy != nil {
		transport.Proxy = http.ProxyURL(f.proxy)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", navdoc.Errorf(navdoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections held by the transport.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
