package reservation

import (
	"time"

	"lease-engine/internal/domain/interval"

	"github.com/google/uuid"
)

// FindConflict returns the first occupant whose slot overlaps candidate.
// An occupant with id exclude is ignored so updates do not collide with
// their own previous window.
func FindConflict(candidate interval.Interval, occupants []Occupant, exclude uuid.UUID) (Occupant, bool) {
	for _, o := range occupants {
		if exclude != uuid.Nil && o.ID == exclude {
			continue
		}
		if interval.Overlaps(candidate, o.Slot) {
			return o, true
		}
	}
	return Occupant{}, false
}

// CheckOfferWindow reports whether window can be carved out of an offer:
// it must lie inside the offer and miss every sibling lease.
func CheckOfferWindow(offerSlot, window interval.Interval, siblings []Occupant, exclude uuid.UUID) bool {
	if !interval.Within(window, offerSlot) {
		return false
	}
	_, found := FindConflict(window, siblings, exclude)
	return !found
}

// FirstBoundary returns the start of the earliest occupied slot that ends
// after start. A claim starting at start can run at most until then. A slot
// ending exactly at start does not bound the claim.
func FirstBoundary(occupied []interval.Interval, start time.Time) (time.Time, bool) {
	var (
		boundary time.Time
		found    bool
	)
	for _, o := range occupied {
		if !o.End().After(start) {
			continue
		}
		if !found || o.Start().Before(boundary) {
			boundary = o.Start()
			found = true
		}
	}
	return boundary, found
}

func Slots(occupants []Occupant) []interval.Interval {
	out := make([]interval.Interval, len(occupants))
	for i, o := range occupants {
		out[i] = o.Slot
	}
	return out
}
