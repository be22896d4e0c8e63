package interval

import (
	"slices"
	"time"
)

// Gaps returns the sub-intervals of span not covered by occupied, in order.
// occupied may touch or share boundaries; it is sorted by start on a copy.
// A fully covered span yields an empty, non-nil slice.
func Gaps(span Interval, occupied []Interval) []Interval {
	sorted := slices.Clone(occupied)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return a.start.Compare(b.start)
	})

	gaps := make([]Interval, 0, len(sorted)+1)
	cursor := span.start
	for _, o := range sorted {
		if cursor.Before(o.start) {
			gaps = append(gaps, Interval{start: cursor, end: minTime(o.start, span.end)})
		}
		if o.end.After(cursor) {
			cursor = o.end
		}
		if !cursor.Before(span.end) {
			return gaps
		}
	}
	if cursor.Before(span.end) {
		gaps = append(gaps, Interval{start: cursor, end: span.end})
	}
	return gaps
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
