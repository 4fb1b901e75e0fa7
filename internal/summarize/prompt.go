// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder is the token in the prompt template replaced by a paper's
// abstract.
const Placeholder = "{abstract}"

// Template is a plain-text prompt containing Placeholder.
type Template string

// LoadTemplate reads the prompt template at path. A template without
// Placeholder would send the same prompt for every paper, so it is rejected.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading prompt template: %w", err)
	}
	if !strings.Contains(string(data), Placeholder) {
		return "", fmt.Errorf("prompt template %s has no %s token", path, Placeholder)
	}
	return Template(data), nil
}

// Render returns the prompt for one abstract.
func (t Template) Render(abstract string) string {
	return strings.ReplaceAll(string(t), Placeholder, abstract)
}
