// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Interval is the [Start, End] submission-date window of one run. It scopes
// the arXiv query and names the cache file.
type Interval struct {
	Start time.Time
	End   time.Time
}

const stampDate = "20060102"

// StartStamp returns the start bound in the arXiv submittedDate form,
// pinned to the beginning of the day.
func (i Interval) StartStamp() string {
	return i.Start.Format(stampDate) + "000000"
}

// EndStamp returns the end bound in the arXiv submittedDate form, pinned to
// 23:59 of the day.
func (i Interval) EndStamp() string {
	return i.End.Format(stampDate) + "235900"
}
