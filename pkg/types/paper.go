// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-digest pipeline.
// The fetch stage produces Papers and writes them to the cache file; the
// summarize stage reads them back and derives one Summary per paper.
package types

// Paper is the normalized representation of one fetched arXiv entry.
// All five fields are always populated. The JSON keys are the cache file
// format and must stay stable.
type Paper struct {
	// Title has its newlines removed and double spaces collapsed.
	Title string `json:"title" yaml:"title"`

	// Link is the canonical arXiv abstract URL taken from the entry id.
	Link string `json:"link" yaml:"link"`

	// Abstract is the trimmed entry summary with newlines removed.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the submission date formatted as DD.MM.YYYY.
	Published string `json:"published" yaml:"published"`

	// Authors is the sole author's name, or "<first author> et al." when
	// the entry lists more than one.
	Authors string `json:"authors" yaml:"authors"`
}

// Summary holds the fields parsed out of the model's output for one paper.
// It is written to the report and then discarded.
type Summary struct {
	Summary  string
	Keywords string
}
