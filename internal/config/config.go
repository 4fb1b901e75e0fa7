// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the JSON configuration file shared by
// the fetch and summarize stages.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	// FileName is the config file looked up when no explicit path is given.
	FileName = "config.json"

	defaultTemplate  = "template.tmpl"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "paper-digest/0.1"
	envPrefix        = "PAPER_DIGEST"
)

// SearchPaths returns the candidate config file locations in priority
// order: ./config.json, then ~/.config/paper-digest/config.json.
func SearchPaths() []string {
	paths := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "paper-digest", FileName))
	}
	return paths
}

// Resolve returns explicit when set, or the first existing file among
// SearchPaths.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}
	candidates := SearchPaths()
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no config file found; searched: %s", strings.Join(candidates, ", "))
}

// Load reads the JSON config at path, applies defaults and environment
// overrides (PAPER_DIGEST_<KEY>), and validates the result.
func Load(path string) (types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("template", defaultTemplate)
	v.SetDefault("papers_dir", "")
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("user_agent", defaultUserAgent)

	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if !filepath.IsAbs(cfg.TemplatePath) {
		cfg.TemplatePath = filepath.Join(filepath.Dir(path), cfg.TemplatePath)
	}
	if cfg.PapersDir == "" {
		cfg.PapersDir = DefaultPapersDir()
	}

	if err := Validate(cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem that would make a run meaningless.
// An empty include list would produce an empty query.
func Validate(cfg types.Config) error {
	var errs []error
	if len(cfg.IncludeTerms) == 0 {
		errs = append(errs, errors.New("include_terms must list at least one term"))
	}
	if cfg.Category == "" {
		errs = append(errs, errors.New("category is required"))
	}
	if cfg.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("max_results must be positive, got %d", cfg.MaxResults))
	}
	if cfg.DaysBefore < 0 {
		errs = append(errs, fmt.Errorf("days_before must not be negative, got %d", cfg.DaysBefore))
	}
	if cfg.Model == "" {
		errs = append(errs, errors.New("model is required"))
	}
	return errors.Join(errs...)
}

// DefaultPapersDir returns ~/papers, the per-user directory for cache
// files and the summary report.
func DefaultPapersDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "papers"
	}
	return filepath.Join(home, "papers")
}
