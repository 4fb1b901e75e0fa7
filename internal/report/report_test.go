// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/pkg/types"
)

var (
	testPaper = types.Paper{
		Title:     "Attention Is All You Need",
		Link:      "http://arxiv.org/abs/1706.03762v7",
		Abstract:  "ignored",
		Published: "12.06.2017",
		Authors:   "Ashish Vaswani et al.",
	}
	testSummary = types.Summary{
		Summary:  "Introduces the Transformer.",
		Keywords: "attention, transformer",
	}
)

const wantEntry = `
# Attention Is All You Need

> **Ashish Vaswani et al. (12.06.2017)**

Introduces the Transformer.

*keywords: attention, transformer*

http://arxiv.org/abs/1706.03762v7
`

func TestFormatEntry(t *testing.T) {
	assert.Equal(t, wantEntry, FormatEntry(testPaper, testSummary))
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers", FileName)

	for run := 0; run < 2; run++ {
		w, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, w.Append(testPaper, testSummary))
		require.NoError(t, w.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantEntry+wantEntry, string(data),
		"a second run appends a second full set of entries")
}

func TestOpenKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("# Earlier\n"), 0o644))

	w, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(testPaper, testSummary))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Earlier\n"+wantEntry, string(data))
}

// failAfter accepts n bytes, then fails every write.
type failAfter struct {
	n     int
	buf   bytes.Buffer
	calls int
}

func (f *failAfter) Write(p []byte) (int, error) {
	f.calls++
	if f.buf.Len()+len(p) > f.n {
		return 0, errors.New("disk full")
	}
	return f.buf.Write(p)
}

func TestAppendWritesWholeEntryOnce(t *testing.T) {
	sink := &failAfter{n: len(wantEntry)}
	w := NewWriter(sink)

	require.NoError(t, w.Append(testPaper, testSummary))
	assert.Equal(t, 1, sink.calls, "entry is materialized before a single write")

	err := w.Append(testPaper, testSummary)
	require.Error(t, err)
	assert.Equal(t, wantEntry, sink.buf.String(), "no partial entry is written")
	assert.NoError(t, w.Close())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML([]byte(wantEntry), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Attention Is All You Need</h1>")
	assert.Contains(t, out, "<blockquote>")
	assert.Contains(t, out, "<strong>Ashish Vaswani et al. (12.06.2017)</strong>")
	assert.Contains(t, out, "<em>keywords: attention, transformer</em>")
}

func TestRenderHTML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, FileName)
	dst := filepath.Join(dir, "summary.html")
	require.NoError(t, os.WriteFile(src, []byte(wantEntry), 0o644))

	require.NoError(t, RenderHTML(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Attention Is All You Need</h1>")

	err = RenderHTML(filepath.Join(dir, "missing.md"), dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading report")
}
