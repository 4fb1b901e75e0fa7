// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const summaryMarker = "summary:"

// responsePattern matches "summary: <text>", a blank line, then
// "keywords: <comma-separated list>". The summary may span lines.
var responsePattern = regexp.MustCompile(`(?s)summary:\s*(.+?)\s*\n\nkeywords:\s*((?:[^,\n]+(?:,\s*)?)+)`)

// ParseResponse extracts the summary and keyword list from raw model
// output. Output that does not start with "summary:" gets the marker
// prepended, since models often drop it. ok is false when the output does
// not match; the caller skips that paper.
func ParseResponse(output string) (s types.Summary, ok bool) {
	if !strings.HasPrefix(output, summaryMarker) {
		output = summaryMarker + " " + output
	}

	m := responsePattern.FindStringSubmatch(output)
	if m == nil {
		return types.Summary{}, false
	}

	return types.Summary{
		Summary:  strings.TrimSpace(m[1]),
		Keywords: normalizeKeywords(m[2]),
	}, true
}

// normalizeKeywords trims each comma-separated keyword and rejoins them
// with ", ".
func normalizeKeywords(list string) string {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
