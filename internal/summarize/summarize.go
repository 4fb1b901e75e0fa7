// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns cached papers into report entries: it makes sure
// the model is available, prompts it once per paper in order, parses each
// response, and hands matched summaries to the report.
package summarize

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paper-digest/internal/runner"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// EntryWriter receives one report entry per summarized paper.
type EntryWriter interface {
	Append(p types.Paper, s types.Summary) error
}

// Options holds the per-run summarization settings.
type Options struct {
	Model    string
	Template Template
}

// BatchSummary holds counts from a summarization run.
type BatchSummary struct {
	// Written counts papers whose entry was appended to the report.
	Written int
	// Skipped counts papers whose model output did not match the pattern.
	Skipped int
	// Failed counts papers whose model invocation itself failed.
	Failed int
}

// Total returns the number of papers processed.
func (s BatchSummary) Total() int {
	return s.Written + s.Skipped + s.Failed
}

// EnsureModel pulls model when the runner does not have it yet, blocking
// until the download finishes. Pull progress is written to w.
func EnsureModel(ctx context.Context, r runner.ModelRunner, model string, w io.Writer) error {
	present, err := r.HasModel(ctx, model)
	if err != nil {
		return err
	}
	if !present {
		fmt.Fprintf(w, "Downloading %s...\n", model)
		if err := r.Pull(ctx, model, w); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "[INFO] Model %s ready\n", model)
	return nil
}

// Summarize prompts the model for each paper sequentially and appends an
// entry for every response that parses. Unparseable output skips the paper
// without an entry. A failed invocation is reported on w and skipped; a
// cancelled context or a report write error aborts the run.
func Summarize(ctx context.Context, r runner.ModelRunner, papers []types.Paper, opts Options, out EntryWriter, w io.Writer) (BatchSummary, error) {
	var summary BatchSummary
	total := len(papers)

	for i, p := range papers {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		output, err := r.Run(ctx, opts.Model, opts.Template.Render(p.Abstract))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return summary, ctxErr
			}
			fmt.Fprintf(w, "[WARN] %s: %v\n", p.Title, err)
			summary.Failed++
			progress(w, i+1, total)
			continue
		}

		s, ok := ParseResponse(output)
		if !ok {
			summary.Skipped++
			progress(w, i+1, total)
			continue
		}

		if err := out.Append(p, s); err != nil {
			return summary, fmt.Errorf("writing report entry for %q: %w", p.Title, err)
		}
		summary.Written++
		progress(w, i+1, total)
	}

	return summary, nil
}

func progress(w io.Writer, done, total int) {
	fmt.Fprintf(w, "Summarizing papers... %d/%d\n", done, total)
}
