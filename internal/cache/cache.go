// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores the papers of one fetch run as a JSON file named
// after the search interval, and reads them back for summarization.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const nameDate = "02-01-2006"

// FileName returns "<start DD-MM-YYYY>__<end DD-MM-YYYY>.json" for iv.
func FileName(iv types.Interval) string {
	return fmt.Sprintf("%s__%s.json", iv.Start.Format(nameDate), iv.End.Format(nameDate))
}

// Path returns the cache file location for iv under dir.
func Path(dir string, iv types.Interval) string {
	return filepath.Join(dir, FileName(iv))
}

// Write serializes papers to path, creating the parent directory if
// needed. The file is written to a temp file first and renamed into place,
// so a failed write never leaves a truncated cache.
func Write(path string, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling papers: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

// Read loads the papers stored at path.
func Read(path string) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache file: %w", err)
	}
	var papers []types.Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: %w", path, err)
	}
	return papers, nil
}
