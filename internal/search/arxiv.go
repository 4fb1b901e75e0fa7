// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivBackend queries the arXiv API for papers submitted within an interval.
type ArxivBackend struct {
	Client *http.Client
}

// RequestURL returns the full arXiv query URL for cfg and iv, capped at
// cfg.MaxResults and ordered by descending submission date.
func RequestURL(base string, cfg types.Config, iv types.Interval) string {
	params := url.Values{}
	params.Set("search_query", SearchQuery(cfg, iv))
	params.Set("max_results", strconv.Itoa(cfg.MaxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")
	return base + "?" + params.Encode()
}

// Fetch issues one GET request for cfg and iv and extracts the returned
// entries. The request URL is echoed to w. There is no retry: any transport
// error or non-200 status fails the fetch.
func (b *ArxivBackend) Fetch(ctx context.Context, cfg types.Config, iv types.Interval, w io.Writer) ([]types.Paper, error) {
	u := RequestURL(arxivAPIBase, cfg, iv)
	fmt.Fprintf(w, "Requested URL: %s\n", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	papers, err := ExtractPapers(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return papers, nil
}
