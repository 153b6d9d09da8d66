// Package fs writes exported pages to a single file.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/navdoc"
)

// Ensure ExportFile implements navdoc.PageStore at compile time.
var _ navdoc.PageStore = (*ExportFile)(nil)

// ExportFile implements navdoc.PageStore by buffering pages in memory and
// writing them to one file on Commit. Nothing touches the disk before
// Commit, so an aborted run leaves any previous export in place.
type ExportFile struct {
	path      string
	fragments []string
	pages     int
}

// NewExportFile creates an ExportFile that writes to path.
func NewExportFile(path string) *ExportFile {
	return &ExportFile{path: path}
}

// FormatPage renders one page block: "# <path>", a blank line, the content
// and a blank-line separator.
func FormatPage(page *navdoc.Page) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(page.Path)
	b.WriteString("\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n\n")
	return b.String()
}

// Save appends the page to the buffer.
func (f *ExportFile) Save(ctx context.Context, page *navdoc.Page) error {
	f.fragments = append(f.fragments, FormatPage(page))
	f.pages++
	return nil
}

// Commit writes the buffered pages to the destination, replacing any
// existing file. The file is written next to the destination and renamed
// into place.
func (f *ExportFile) Commit() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := writeFragments(tmp, f.fragments); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func writeFragments(file *os.File, fragments []string) error {
	for _, frag := range fragments {
		if _, err := file.WriteString(frag); err != nil {
			return err
		}
	}
	return nil
}

// Abort discards the buffered pages.
func (f *ExportFile) Abort() error {
	f.fragments = nil
	f.pages = 0
	return nil
}

// Pages returns the number of pages buffered.
func (f *ExportFile) Pages() int {
	return f.pages
}

// Path returns the destination file path.
func (f *ExportFile) Path() string {
	return f.path
}

// Checksum returns the xxhash of the buffered export. Two runs producing
// the same file have the same checksum.
func (f *ExportFile) Checksum() string {
	d := xxhash.New()
	for _, frag := range f.fragments {
		_, _ = d.WriteString(frag)
	}
	return fmt.Sprintf("%x", d.Sum64())
}
