// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Paper summaries</title>
</head>
<body>
`

const htmlFoot = `</body>
</html>
`

// WriteHTML converts Markdown source to a standalone HTML page on w.
func WriteHTML(src []byte, w io.Writer) error {
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFoot)
	return err
}

// RenderHTML reads the Markdown report at src and writes the HTML page to dst.
func RenderHTML(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	var buf bytes.Buffer
	if err := WriteHTML(data, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
