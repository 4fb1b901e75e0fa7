// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/cache"
	"github.com/pdiddy/paper-digest/internal/search"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Query arXiv and cache the papers of the current interval",
	Long: `Fetch builds the arXiv query from the configured include and exclude
terms, restricts it to the configured category and to submissions between
days_before days ago and today, and writes the extracted papers to
<papers-dir>/<start>__<end>.json. Nothing is written if any entry is malformed.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	backend := &search.ArxivBackend{Client: &http.Client{Timeout: cfg.Timeout}}
	_, err = fetchToCache(cmd.Context(), cfg, backend, time.Now(), os.Stdout)
	return err
}

// fetchToCache runs the fetch stage and returns the cache file path.
func fetchToCache(ctx context.Context, cfg types.Config, f search.Fetcher, now time.Time, w io.Writer) (string, error) {
	iv := search.NewInterval(now, cfg.DaysBefore)

	papers, err := f.Fetch(ctx, cfg, iv, w)
	if err != nil {
		return "", err
	}

	path := cache.Path(cfg.PapersDir, iv)
	if err := cache.Write(path, papers); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Cached %d papers in %s\n", len(papers), path)
	return path, nil
}
