// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Config holds the settings shared by the fetch and summarize stages. It is
// loaded once by the entry point and passed by value into every component.
type Config struct {
	// IncludeTerms are the keywords the search must match.
	IncludeTerms []string `json:"include_terms" yaml:"include_terms" mapstructure:"include_terms"`

	// ExcludeTerms are the keywords the search must not match.
	ExcludeTerms []string `json:"exclude_terms" yaml:"exclude_terms" mapstructure:"exclude_terms"`

	// ConjoinIncludes joins include terms with AND when true and with OR
	// when false. The on-disk key is "union" for compatibility with
	// existing config files, even though true selects the conjunction.
	ConjoinIncludes bool `json:"union" yaml:"union" mapstructure:"union"`

	// Category is the arXiv category code (e.g. "cs.CL").
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// MaxResults caps the number of entries requested from arXiv.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Model is the Ollama model identifier (e.g. "llama3.2").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// DaysBefore is the lookback window of the search interval in days.
	DaysBefore int `json:"days_before" yaml:"days_before" mapstructure:"days_before"`

	// TemplatePath is the prompt template file. Relative paths resolve
	// against the directory of the config file.
	TemplatePath string `json:"template,omitempty" yaml:"template,omitempty" mapstructure:"template"`

	// PapersDir holds the cache files and the summary report (default ~/papers).
	PapersDir string `json:"papers_dir,omitempty" yaml:"papers_dir,omitempty" mapstructure:"papers_dir"`

	// Timeout is the HTTP request timeout for the search request.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent to arXiv.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty" mapstructure:"user_agent"`
}
