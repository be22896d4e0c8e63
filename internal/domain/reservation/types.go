package reservation

import (
	"lease-engine/internal/domain/interval"

	"github.com/google/uuid"
)

// Kind tells which population an occupant of a resource timeline comes from.
type Kind string

const (
	KindOffer       Kind = "offer"
	KindLease       Kind = "lease"
	KindOwnerChange Kind = "owner_change"
)

func (k Kind) String() string {
	return string(k)
}

// Occupant is a reservation that currently blocks a window on a resource.
type Occupant struct {
	Kind Kind
	ID   uuid.UUID
	Slot interval.Interval
}

// Transfer is the part of an owner change the arbiter needs.
type Transfer struct {
	ID        uuid.UUID
	Slot      interval.Interval
	ToOwnerID string
}
