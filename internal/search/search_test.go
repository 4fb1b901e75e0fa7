// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

var formatPapers = []types.Paper{
	{
		Title:     "Attention Is All You Need",
		Link:      "http://arxiv.org/abs/1706.03762v7",
		Abstract:  "The dominant sequence transduction models.",
		Published: "12.06.2017",
		Authors:   "Ashish Vaswani et al.",
	},
	{
		Title:     strings.Repeat("Very Long Title ", 10),
		Link:      "http://arxiv.org/abs/2403.01234v1",
		Abstract:  "We study one thing.",
		Published: "05.03.2024",
		Authors:   "Jane Doe",
	},
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(formatPapers, &buf)
	out := buf.String()

	if !strings.Contains(out, "Attention Is All You Need") {
		t.Error("table should contain first title")
	}
	if !strings.Contains(out, "...") {
		t.Error("long title should be truncated")
	}
	if !strings.Contains(out, "2 papers") {
		t.Errorf("table should report count, got:\n%s", out)
	}
}

func TestFormatTableMultibyte(t *testing.T) {
	papers := []types.Paper{{
		Title:     strings.Repeat("é", 80),
		Link:      "http://arxiv.org/abs/1",
		Published: "05.03.2024",
		Authors:   strings.Repeat("ü", 30),
	}}
	var buf bytes.Buffer
	FormatTable(papers, &buf)
	out := buf.String()

	if !utf8.ValidString(out) {
		t.Fatal("table output is not valid UTF-8")
	}
	if !strings.Contains(out, strings.Repeat("é", 57)+"...") {
		t.Errorf("title should be cut to 57 runes, got:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"abcdefghijkl", 10, "abcdefg..."},
		{"ééééééééééé", 10, "ééééééé..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No papers cached.") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(formatPapers, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	var got []types.Paper
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[1].Authors != "Jane Doe" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatYAML(formatPapers, &buf); err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "published: 12.06.2017") {
		t.Errorf("YAML missing published field:\n%s", buf.String())
	}
	var got []types.Paper
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(got) != 2 || got[0].Link != formatPapers[0].Link {
		t.Errorf("decoded = %+v", got)
	}
}
