package navdoc

import (
	"context"
	"strings"
)

// MarkdownSuffix is appended to a page path to address its Markdown source.
const MarkdownSuffix = ".md"

// Page represents a downloaded documentation page.
type Page struct {
	Path    string // page path from the navigation
	URL     string
	Content string // Markdown
}

// PageURL builds the Markdown source URL of a page path:
// <site>/<path>.md, with exactly one slash between site and path.
func PageURL(siteURL, path string) string {
	return strings.TrimSuffix(siteURL, "/") + "/" + strings.TrimPrefix(path, "/") + MarkdownSuffix
}

// FetchProgress reports progress during page fetching.
type FetchProgress struct {
	Path      string
	URL       string
	Completed int
	Total     int
	Succeeded int
	Error     error
}

// FetchProgressFunc is called once per page, after its final attempt.
type FetchProgressFunc func(FetchProgress)

// NavigationSource loads the navigation tree of a documentation site.
type NavigationSource interface {
	Navigation(ctx context.Context, siteURL string) (Node, error)
}

// PageFetcher downloads the Markdown source of page paths.
// Implementations hide URL construction and retry logic. Pages that could
// not be retrieved are reported through progress and omitted from the
// result; an error return aborts the whole export.
type PageFetcher interface {
	FetchAll(ctx context.Context, siteURL string, paths []string, progress FetchProgressFunc) ([]*Page, error)
}

// PageStore accumulates pages and persists them in one step.
// Save buffers a page; Commit writes everything saved so far;
// Abort discards pending pages.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
