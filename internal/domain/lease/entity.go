package lease

import (
	"strings"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/patch"
	"lease-engine/internal/pkg/props"

	"github.com/google/uuid"
)

const MaxNameLength = 255

var ErrNameTooLong = errs.New("lease name is too long (max 255 characters)")

type Lease struct {
	id         uuid.UUID
	name       string
	offerID    *uuid.UUID
	projectID  string
	ownerID    string
	resource   resource.Ref
	slot       interval.Interval
	status     Status
	properties props.Properties
	createdAt  time.Time
	updatedAt  time.Time
}

type NewParams struct {
	Name       string
	OfferID    *uuid.UUID
	ProjectID  string
	OwnerID    string
	Resource   resource.Ref
	Slot       interval.Interval
	Properties props.Properties
}

func New(p NewParams, now time.Time) (*Lease, error) {
	name := strings.TrimSpace(p.Name)
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if p.Slot.IsZero() {
		return nil, errs.Mark(errs.New("lease requires a time range"), errs.ErrInvalidTimeRange)
	}
	return &Lease{
		id:         uuid.New(),
		name:       name,
		offerID:    p.OfferID,
		projectID:  p.ProjectID,
		ownerID:    p.OwnerID,
		resource:   p.Resource,
		slot:       p.Slot,
		status:     StatusCreated,
		properties: p.Properties.Clone(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	offerID *uuid.UUID,
	projectID, ownerID string,
	ref resource.Ref,
	slot interval.Interval,
	status Status,
	properties props.Properties,
	createdAt, updatedAt time.Time,
) *Lease {
	return &Lease{
		id:         id,
		name:       name,
		offerID:    offerID,
		projectID:  projectID,
		ownerID:    ownerID,
		resource:   ref,
		slot:       slot,
		status:     status,
		properties: properties,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Patch lists the mutable fields of a lease; id, consuming project, owner,
// offer and resource are fixed at creation.
type Patch struct {
	Name       *string
	Start      *time.Time
	End        *time.Time
	Status     *Status
	Properties props.Properties
}

// Apply reports whether the lease now holds a window it did not hold before.
func (l *Lease) Apply(p Patch, now time.Time) (bool, error) {
	slot, err := interval.New(patch.Coalesce(p.Start, l.slot.Start()), patch.Coalesce(p.End, l.slot.End()))
	if err != nil {
		return false, err
	}
	if p.Status != nil && !p.Status.IsValid() {
		return false, errs.Mark(errs.Newf("unknown lease status %q", *p.Status), errs.ErrInvalidStatus)
	}
	status := patch.Coalesce(p.Status, l.status)
	if status != l.status && l.status.Terminal() {
		return false, errs.Mark(errs.Newf("lease %s is %s and cannot become %s", l.id, l.status, status), errs.ErrInvalidStatus)
	}
	name := patch.Text(p.Name, l.name)
	if len(name) > MaxNameLength {
		return false, ErrNameTooLong
	}
	merged, err := props.Merge(l.properties, p.Properties)
	if err != nil {
		return false, err
	}

	recheck := status.Holds() && (!slot.Equal(l.slot) || !l.status.Holds())
	l.name = name
	l.slot = slot
	l.status = status
	l.properties = merged
	l.updatedAt = now
	return recheck, nil
}

func (l *Lease) Cancel(now time.Time) error {
	if !l.status.Holds() {
		return errs.Mark(errs.Newf("lease %s is %s", l.id, l.status), errs.ErrInvalidStatus)
	}
	l.status = StatusCancelled
	l.updatedAt = now
	return nil
}

func (l *Lease) Activate(now time.Time) {
	if l.status == StatusCreated {
		l.status = StatusActive
		l.updatedAt = now
	}
}

func (l *Lease) Expire(now time.Time) {
	if l.status.Holds() {
		l.status = StatusExpired
		l.updatedAt = now
	}
}

// InvolvedProject reports whether projectID consumes or owns the lease.
func (l *Lease) InvolvedProject(projectID string) bool {
	return l.projectID == projectID || l.ownerID == projectID
}

func (l *Lease) ID() uuid.UUID                { return l.id }
func (l *Lease) Name() string                 { return l.name }
func (l *Lease) OfferID() *uuid.UUID          { return l.offerID }
func (l *Lease) ProjectID() string            { return l.projectID }
func (l *Lease) OwnerID() string              { return l.ownerID }
func (l *Lease) Resource() resource.Ref       { return l.resource }
func (l *Lease) Slot() interval.Interval      { return l.slot }
func (l *Lease) Status() Status               { return l.status }
func (l *Lease) Holds() bool                  { return l.status.Holds() }
func (l *Lease) Properties() props.Properties { return l.properties }
func (l *Lease) CreatedAt() time.Time         { return l.createdAt }
func (l *Lease) UpdatedAt() time.Time         { return l.updatedAt }
