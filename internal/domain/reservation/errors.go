package reservation

import (
	"fmt"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// ConflictError reports which reservation blocks a requested window.
type ConflictError struct {
	Resource resource.Ref
	Window   interval.Interval
	Occupant Occupant
}

func NewConflictError(ref resource.Ref, window interval.Interval, occupant Occupant) *ConflictError {
	return &ConflictError{Resource: ref, Window: window, Occupant: occupant}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource %s already has a conflicting %s %s during %s",
		e.Resource, e.Occupant.Kind, e.Occupant.ID, e.Window)
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrResourceTimeConflict
}

// OfferUnavailableError reports a window an offer cannot host. An open-ended
// claim has no window yet; it carries only the requested start.
type OfferUnavailableError struct {
	OfferID uuid.UUID
	Window  interval.Interval
	Start   time.Time
}

func NewOfferUnavailableError(offerID uuid.UUID, window interval.Interval) *OfferUnavailableError {
	return &OfferUnavailableError{OfferID: offerID, Window: window, Start: window.Start()}
}

func NewOfferUnavailableFrom(offerID uuid.UUID, start time.Time) *OfferUnavailableError {
	return &OfferUnavailableError{OfferID: offerID, Start: start}
}

func (e *OfferUnavailableError) Error() string {
	if e.Window.IsZero() {
		return fmt.Sprintf("offer %s has no availability from %s", e.OfferID, e.Start.Format(time.RFC3339))
	}
	return fmt.Sprintf("offer %s has no availability during %s", e.OfferID, e.Window)
}

func (e *OfferUnavailableError) Is(target error) bool {
	return target == errs.ErrOfferNoTimeAvailabilities
}
