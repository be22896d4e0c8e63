package shared

import (
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"

	"github.com/google/uuid"
)

type TimeMode string

const (
	// TimeModeCovers keeps reservations whose interval covers the whole window.
	TimeModeCovers TimeMode = "covers"
	// TimeModeWithin keeps reservations that start or end inside the window,
	// bounds inclusive.
	TimeModeWithin TimeMode = "within"
)

func (m TimeMode) IsValid() bool {
	return m == TimeModeCovers || m == TimeModeWithin
}

type TimeFilter struct {
	Start time.Time
	End   time.Time
	Mode  TimeMode
}

// LesseeFilter keeps offers the project may see: its own, unrestricted ones,
// and those restricted to a project in its lineage.
type LesseeFilter struct {
	ProjectID string
	Lineage   []string
}

type OfferFilter struct {
	Resource     *resource.Ref
	ResourceType *string
	ProjectID    *string
	Lessee       *LesseeFilter
	Statuses     []offer.Status
	Time         *TimeFilter
	// Overlapping keeps offers sharing any instant with the interval.
	Overlapping *interval.Interval
	// EndsBy keeps offers ending at or before the instant.
	EndsBy *time.Time
}

type LeaseFilter struct {
	Resource         *resource.Ref
	ResourceType     *string
	OfferID          *uuid.UUID
	ProjectID        *string
	OwnerID          *string
	ProjectOrOwnerID *string
	Statuses         []lease.Status
	Time             *TimeFilter
	Overlapping      *interval.Interval
	StartsBy         *time.Time
	EndsBy           *time.Time
}

type OwnerChangeFilter struct {
	Resource        *resource.Ref
	FromOrToOwnerID *string
	Statuses        []ownerchange.Status
	// Containing keeps changes whose interval contains the window.
	Containing  *interval.Interval
	Overlapping *interval.Interval
	StartsBy    *time.Time
	EndsBy      *time.Time
}
