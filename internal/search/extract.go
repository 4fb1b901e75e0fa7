// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// publishedLayout is the output form of Paper.Published.
const publishedLayout = "02.01.2006"

// timestampLayouts are the ISO-8601 forms accepted for <published>.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ErrNoAuthors is the cause recorded when an entry lists no author names.
var ErrNoAuthors = errors.New("entry lists no authors")

// MalformedEntryError reports an Atom entry that cannot become a Paper.
// Extraction stops at the first such entry.
type MalformedEntryError struct {
	// Index is the zero-based position of the entry in the feed.
	Index int
	// Field is the Atom element at fault (title, id, summary, published, author).
	Field string
	Err   error
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *MalformedEntryError) Unwrap() error { return e.Err }

var errMissing = errors.New("element missing or empty")

// ExtractPapers parses an arXiv Atom document into Papers, preserving entry
// order. It fails with *MalformedEntryError when any entry lacks a title,
// id, summary, published timestamp or author, so callers never see a
// partial result.
func ExtractPapers(r io.Reader) ([]types.Paper, error) {
	feed, err := (&atom.Parser{}).Parse(r)
	if err != nil {
		return nil, fmt.Errorf("decoding Atom feed: %w", err)
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		p, err := extractEntry(entry)
		if err != nil {
			var fe *MalformedEntryError
			if errors.As(err, &fe) {
				fe.Index = i
			}
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

func extractEntry(e *atom.Entry) (types.Paper, error) {
	title := stripNewlines(e.Title)
	title = strings.TrimSpace(strings.ReplaceAll(title, "  ", " "))
	if title == "" {
		return types.Paper{}, &MalformedEntryError{Field: "title", Err: errMissing}
	}

	link := stripNewlines(e.ID)
	if strings.TrimSpace(link) == "" {
		return types.Paper{}, &MalformedEntryError{Field: "id", Err: errMissing}
	}

	abstract := strings.TrimSpace(stripNewlines(e.Summary))
	if abstract == "" {
		return types.Paper{}, &MalformedEntryError{Field: "summary", Err: errMissing}
	}

	raw := strings.TrimSpace(stripNewlines(e.Published))
	if raw == "" {
		return types.Paper{}, &MalformedEntryError{Field: "published", Err: errMissing}
	}
	published, err := parseTimestamp(raw)
	if err != nil {
		return types.Paper{}, &MalformedEntryError{Field: "published", Err: err}
	}

	authors, err := authorLine(e.Authors)
	if err != nil {
		return types.Paper{}, &MalformedEntryError{Field: "author", Err: err}
	}

	return types.Paper{
		Title:     title,
		Link:      link,
		Abstract:  abstract,
		Published: published.Format(publishedLayout),
		Authors:   authors,
	}, nil
}

// authorLine keeps only the first author, suffixed with " et al." when
// more than one is listed. Authors without a name are ignored.
func authorLine(people []*atom.Person) (string, error) {
	var names []string
	for _, p := range people {
		if p == nil {
			continue
		}
		name := stripNewlines(p.Name)
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	switch len(names) {
	case 0:
		return "", ErrNoAuthors
	case 1:
		return names[0], nil
	default:
		return names[0] + " et al.", nil
	}
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
