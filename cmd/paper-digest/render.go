// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render summary.md to a standalone HTML page",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("out", "", "output HTML file (default: summary.html next to summary.md)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src := filepath.Join(cfg.PapersDir, report.FileName)

	dst, _ := cmd.Flags().GetString("out")
	if dst == "" {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".html"
	}

	if err := report.RenderHTML(src, dst); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", dst)
	return nil
}
