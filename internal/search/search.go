// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds the arXiv query for a configured interval, fetches
// the Atom result document, and extracts normalized Paper records from it.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Fetcher retrieves the papers submitted within an interval.
type Fetcher interface {
	Fetch(ctx context.Context, cfg types.Config, iv types.Interval, w io.Writer) ([]types.Paper, error)
}

// FormatTable writes papers as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers cached.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-10s  %s\n",
		"#", "Title", "Authors", "Published", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for i, p := range papers {
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-10s  %s\n",
			i+1, truncate(p.Title, 60), truncate(p.Authors, 24), p.Published, p.Link)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// FormatYAML writes papers as a YAML sequence to w.
func FormatYAML(papers []types.Paper, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(papers); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
