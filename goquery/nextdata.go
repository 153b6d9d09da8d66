// Package goquery reads the navigation tree embedded in a Next.js
// documentation site's landing page.
package goquery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/navdoc"
)

// NextDataSelector matches the script carrying the Next.js page payload.
const NextDataSelector = "script#__NEXT_DATA__"

// NavigationPath is the key path from the payload root to the navigation.
var NavigationPath = []string{"props", "pageProps", "pageData", "docsConfig", "navigation"}

// Ensure NavigationSource implements navdoc.NavigationSource at compile time.
var _ navdoc.NavigationSource = (*NavigationSource)(nil)

// NavigationSource fetches a site's landing page and parses its navigation.
type NavigationSource struct {
	fetcher navdoc.Fetcher
}

// NewNavigationSource creates a NavigationSource that loads the landing page
// with the given fetcher.
func NewNavigationSource(fetcher navdoc.Fetcher) *NavigationSource {
	return &NavigationSource{fetcher: fetcher}
}

// Navigation fetches siteURL and returns its navigation tree.
func (s *NavigationSource) Navigation(ctx context.Context, siteURL string) (navdoc.Node, error) {
	html, err := s.fetcher.Fetch(ctx, siteURL)
	if err != nil {
		return navdoc.Node{}, fmt.Errorf("fetch landing page: %w", err)
	}
	return ParseNavigation(html)
}

// ParseNavigation extracts the navigation tree from landing page HTML.
func ParseNavigation(html string) (navdoc.Node, error) {
	payload, err := ParseNextData(html)
	if err != nil {
		return navdoc.Node{}, err
	}

	nav, ok := payload.Lookup(NavigationPath...)
	if !ok {
		return navdoc.Node{}, navdoc.Errorf(navdoc.ENOTFOUND, "navigation not found at %s", strings.Join(NavigationPath, "."))
	}
	return nav, nil
}

// ParseNextData decodes the __NEXT_DATA__ payload of a page.
func ParseNextData(html string) (navdoc.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return navdoc.Node{}, navdoc.Errorf(navdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	script := doc.Find(NextDataSelector).First()
	if script.Length() == 0 {
		return navdoc.Node{}, navdoc.Errorf(navdoc.ENOTFOUND, "no __NEXT_DATA__ script in landing page")
	}

	var payload navdoc.Node
	if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
		return navdoc.Node{}, navdoc.Errorf(navdoc.EINVALID, "malformed __NEXT_DATA__ payload: %v", err)
	}
	return payload, nil
}
