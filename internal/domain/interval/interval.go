// Package interval models half-open time ranges [start, end) and the
// predicates the reservation engine evaluates over them.
package interval

import (
	"fmt"
	"time"

	"lease-engine/internal/pkg/errs"
)

// Forever is the end used for open-ended reservations.
var Forever = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errs.Mark(
			errs.Newf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			errs.ErrInvalidTimeRange,
		)
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

func (i Interval) Equal(other Interval) bool {
	return i.start.Equal(other.start) && i.end.Equal(other.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}

// Overlaps reports whether a and b share any instant. Touching edges
// (a.end == b.start) do not overlap.
func Overlaps(a, b Interval) bool {
	startsInside := !a.start.Before(b.start) && a.start.Before(b.end)
	endsInside := a.end.After(b.start) && !a.end.After(b.end)
	covers := !a.start.After(b.start) && !a.end.Before(b.end)
	return startsInside || endsInside || covers
}

// Straddles reports whether window crosses a boundary of change: it starts
// inside and runs past the end, starts before and ends inside, or covers it.
func Straddles(window, change Interval) bool {
	tailOut := !window.start.Before(change.start) && window.start.Before(change.end) && window.end.After(change.end)
	headOut := window.start.Before(change.start) && window.end.After(change.start) && window.end.Before(change.end)
	covers := !window.start.After(change.start) && !window.end.Before(change.end)
	return tailOut || headOut || covers
}

// Within reports whether inner lies inside outer, bounds inclusive.
func Within(inner, outer Interval) bool {
	return !inner.start.Before(outer.start) && !inner.end.After(outer.end)
}
