// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/cache"
	"github.com/pdiddy/paper-digest/internal/report"
	"github.com/pdiddy/paper-digest/internal/runner"
	"github.com/pdiddy/paper-digest/internal/search"
	"github.com/pdiddy/paper-digest/internal/summarize"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize the cached papers with a local Ollama model",
	Long: `Summarize checks that ollama is installed and running, pulls the
configured model if needed, and prompts it with each cached abstract in turn.
Each response that contains a summary and a keyword list is appended to
<papers-dir>/summary.md; other responses are skipped.

Running summarize twice on the same cache appends the entries twice.`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("cache", "", "cache file to summarize (default: the current interval's file)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cachePath, _ := cmd.Flags().GetString("cache")

	err = summarizeCache(cmd.Context(), cfg, runner.NewOllama(), cachePath, time.Now(), os.Stdout)
	if errors.Is(err, runner.ErrExecutableNotFound) || errors.Is(err, runner.ErrRunnerNotReady) {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return nil
	}
	return err
}

// summarizeCache runs the summarize stage. An empty cachePath selects the
// cache file of the interval ending on now.
func summarizeCache(ctx context.Context, cfg types.Config, r runner.ModelRunner, cachePath string, now time.Time, w io.Writer) error {
	if err := r.Check(ctx); err != nil {
		return err
	}

	if cachePath == "" {
		cachePath = cache.Path(cfg.PapersDir, search.NewInterval(now, cfg.DaysBefore))
	}
	papers, err := cache.Read(cachePath)
	if err != nil {
		return err
	}

	tmpl, err := summarize.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return err
	}

	if err := summarize.EnsureModel(ctx, r, cfg.Model, w); err != nil {
		return err
	}

	reportPath := filepath.Join(cfg.PapersDir, report.FileName)
	out, err := report.Open(reportPath)
	if err != nil {
		return err
	}
	defer out.Close()

	opts := summarize.Options{Model: cfg.Model, Template: tmpl}
	result, err := summarize.Summarize(ctx, r, papers, opts, out, w)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Appended %d of %d papers to %s (%d unrecognized, %d failed)\n",
		result.Written, result.Total(), reportPath, result.Skipped, result.Failed)
	return out.Close()
}
