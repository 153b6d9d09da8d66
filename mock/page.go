package mock

import (
	"context"

	"github.com/fwojciec/navdoc"
)

// Compile-time interface verification.
var (
	_ navdoc.NavigationSource = (*NavigationSource)(nil)
	_ navdoc.PageFetcher      = (*PageFetcher)(nil)
	_ navdoc.PageStore        = (*PageStore)(nil)
	_ navdoc.DomainLimiter    = (*DomainLimiter)(nil)
)

// NavigationSource is a mock implementation of navdoc.NavigationSource.
type NavigationSource struct {
	NavigationFn func(ctx context.Context, siteURL string) (navdoc.Node, error)
}

func (s *NavigationSource) Navigation(ctx context.Context, siteURL string) (navdoc.Node, error) {
	return s.NavigationFn(ctx, siteURL)
}

// PageFetcher is a mock implementation of navdoc.PageFetcher.
type PageFetcher struct {
	FetchAllFn func(ctx context.Context, siteURL string, paths []string, progress navdoc.FetchProgressFunc) ([]*navdoc.Page, error)
}

func (f *PageFetcher) FetchAll(ctx context.Context, siteURL string, paths []string, progress navdoc.FetchProgressFunc) ([]*navdoc.Page, error) {
	return f.FetchAllFn(ctx, siteURL, paths, progress)
}

// PageStore is a mock implementation of navdoc.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *navdoc.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *navdoc.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// DomainLimiter is a mock implementation of navdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
