// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Field is an arXiv searchable element prefix.
type Field string

const (
	// FieldAbstract searches within the abstract only.
	FieldAbstract Field = "abs"
	// FieldAll searches all fields.
	FieldAll Field = "all"
)

// NewInterval returns the search window ending on the calendar day of now
// and starting days before it.
func NewInterval(now time.Time, days int) types.Interval {
	y, m, d := now.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return types.Interval{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// BuildQuery combines include and exclude terms into an arXiv boolean query.
//
// Include terms are joined with " AND " when conjoin is true and with " OR "
// otherwise. Exclude terms are always OR-joined and attached as
// "<include> ANDNOT (<exclude>)". Empty include terms yield an empty string.
func BuildQuery(include, exclude []string, conjoin bool, includeIn, excludeIn Field) string {
	op := " OR "
	if conjoin {
		op = " AND "
	}
	includeQuery := joinTerms(include, includeIn, op)
	excludeQuery := joinTerms(exclude, excludeIn, " OR ")

	if excludeQuery != "" {
		return fmt.Sprintf("%s ANDNOT (%s)", includeQuery, excludeQuery)
	}
	return includeQuery
}

func joinTerms(terms []string, field Field, op string) string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = fmt.Sprintf("%s: %s", field, term)
	}
	return strings.Join(parts, op)
}

// SearchQuery assembles the full search_query value: the term query
// restricted to the configured category and the interval's submission dates.
func SearchQuery(cfg types.Config, iv types.Interval) string {
	q := BuildQuery(cfg.IncludeTerms, cfg.ExcludeTerms, cfg.ConjoinIncludes, FieldAbstract, FieldAbstract)
	return fmt.Sprintf("%s AND cat:%s AND submittedDate:[%s TO %s]",
		q, cfg.Category, iv.StartStamp(), iv.EndStamp())
}
