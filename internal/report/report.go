// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report appends summarized papers to the cumulative Markdown
// report and renders that report to HTML.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// FileName is the report file kept in the papers directory.
const FileName = "summary.md"

// Writer appends report entries. Each entry is fully formatted before a
// single write, so an aborted run leaves the file valid up to the last
// complete entry. Repeated runs accumulate entries; nothing is deduplicated.
type Writer struct {
	w io.Writer
	c io.Closer
}

// Open opens path for appending, creating the file and its directory if
// needed. The caller must Close the returned Writer.
func Open(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening report %s: %w", path, err)
	}
	return &Writer{w: f, c: f}, nil
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append writes the entry for p and s.
func (w *Writer) Append(p types.Paper, s types.Summary) error {
	_, err := io.WriteString(w.w, FormatEntry(p, s))
	return err
}

// Close closes the underlying file, if any.
func (w *Writer) Close() error {
	if w.c == nil {
		return nil
	}
	return w.c.Close()
}

// FormatEntry renders one report block: title heading, authors and date
// byline, summary body, then keywords and link.
func FormatEntry(p types.Paper, s types.Summary) string {
	return fmt.Sprintf("\n# %s\n\n> **%s (%s)**\n\n%s\n\n*keywords: %s*\n\n%s\n",
		p.Title, p.Authors, p.Published, s.Summary, s.Keywords, p.Link)
}
