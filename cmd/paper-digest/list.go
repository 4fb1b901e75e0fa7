// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/cache"
	"github.com/pdiddy/paper-digest/internal/search"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the papers in a cache file",
	Long: `List prints the papers cached by fetch for the current interval, or
for the file given with --cache, as a table, JSON, or YAML.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("cache", "", "cache file to show (default: the current interval's file)")
	listCmd.Flags().Bool("json", false, "output papers as JSON")
	listCmd.Flags().Bool("yaml", false, "output papers as YAML")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("cache")
	if path == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path = cache.Path(cfg.PapersDir, search.NewInterval(time.Now(), cfg.DaysBefore))
	}

	papers, err := cache.Read(path)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON:
		return search.FormatJSON(papers, os.Stdout)
	case asYAML:
		return search.FormatYAML(papers, os.Stdout)
	default:
		search.FormatTable(papers, os.Stdout)
		return nil
	}
}
