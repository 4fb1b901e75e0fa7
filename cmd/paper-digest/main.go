// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-digest CLI.
//
// paper-digest runs in two stages. fetch queries arXiv for the configured
// interval and caches the matching papers; summarize prompts a local Ollama
// model for each cached paper and appends the results to summary.md.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/config"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-digest",
	Short: "Fetch recent arXiv papers and summarize them with a local model",
	Long: `paper-digest fetches arXiv papers submitted in the last few days that
match the configured include and exclude terms, caches them as JSON, and
summarizes each abstract with a locally running Ollama model.

Run "fetch" first, then "summarize". Summaries are appended to summary.md
in the papers directory, so repeated runs accumulate entries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.json or ~/.config/paper-digest/config.json)")
	rootCmd.PersistentFlags().String("papers-dir", "", "directory for cache files and summary.md (default: ~/papers)")
}

// loadConfig resolves and loads the config file named by the persistent
// flags. The result is passed explicitly to every stage.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")
	path, err := config.Resolve(explicit)
	if err != nil {
		return types.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return types.Config{}, err
	}
	if dir, _ := cmd.Flags().GetString("papers-dir"); dir != "" {
		cfg.PapersDir = dir
	}
	fmt.Fprintln(os.Stderr, "Using config file:", path)
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := exitCode(ctx, err, os.Stderr)
		stop()
		os.Exit(code)
	}
}

// exitCode reports a failed command on w and returns the process exit
// status. An interrupt prints only the quitting notice.
func exitCode(ctx context.Context, err error, w io.Writer) int {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		fmt.Fprintln(w, "[INFO] Received interrupt signal. Quitting...")
		return 130
	}
	fmt.Fprintln(w, "Error:", err)
	return 1
}
