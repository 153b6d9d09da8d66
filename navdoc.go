// Package navdoc exports a documentation site into a single Markdown file.
// It reads the navigation tree embedded in the site's landing page, collects
// every page path, downloads each page's Markdown source and concatenates
// the results in navigation order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package navdoc
