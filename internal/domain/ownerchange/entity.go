package ownerchange

import (
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/patch"

	"github.com/google/uuid"
)

// OwnerChange hands administration of a resource from one project to another
// for the duration of its slot.
type OwnerChange struct {
	id          uuid.UUID
	resource    resource.Ref
	fromOwnerID string
	toOwnerID   string
	slot        interval.Interval
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

type NewParams struct {
	Resource    resource.Ref
	FromOwnerID string
	ToOwnerID   string
	Slot        interval.Interval
}

func New(p NewParams, now time.Time) (*OwnerChange, error) {
	if p.FromOwnerID == p.ToOwnerID {
		return nil, errs.ErrSameOwner
	}
	if p.Slot.IsZero() {
		return nil, errs.Mark(errs.New("owner change requires a time range"), errs.ErrInvalidTimeRange)
	}
	return &OwnerChange{
		id:          uuid.New(),
		resource:    p.Resource,
		fromOwnerID: p.FromOwnerID,
		toOwnerID:   p.ToOwnerID,
		slot:        p.Slot,
		status:      StatusCreated,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	ref resource.Ref,
	fromOwnerID, toOwnerID string,
	slot interval.Interval,
	status Status,
	createdAt, updatedAt time.Time,
) *OwnerChange {
	return &OwnerChange{
		id:          id,
		resource:    ref,
		fromOwnerID: fromOwnerID,
		toOwnerID:   toOwnerID,
		slot:        slot,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch only reaches the time bounds and status. Owners and resource are
// the identity of the change.
type Patch struct {
	Start  *time.Time
	End    *time.Time
	Status *Status
}

func (c *OwnerChange) Apply(p Patch, now time.Time) (bool, error) {
	slot, err := interval.New(patch.Coalesce(p.Start, c.slot.Start()), patch.Coalesce(p.End, c.slot.End()))
	if err != nil {
		return false, err
	}
	if p.Status != nil && !p.Status.IsValid() {
		return false, errs.Mark(errs.Newf("unknown owner change status %q", *p.Status), errs.ErrInvalidStatus)
	}
	status := patch.Coalesce(p.Status, c.status)
	if status != c.status && c.status.Terminal() {
		return false, errs.Mark(errs.Newf("owner change %s is %s and cannot become %s", c.id, c.status, status), errs.ErrInvalidStatus)
	}

	recheck := status.Pending() && (!slot.Equal(c.slot) || !c.status.Pending())
	c.slot = slot
	c.status = status
	c.updatedAt = now
	return recheck, nil
}

func (c *OwnerChange) Cancel(now time.Time) error {
	if !c.status.Pending() {
		return errs.Mark(errs.Newf("owner change %s is %s", c.id, c.status), errs.ErrInvalidStatus)
	}
	c.status = StatusCancelled
	c.updatedAt = now
	return nil
}

func (c *OwnerChange) Activate(now time.Time) {
	if c.status == StatusCreated {
		c.status = StatusActive
		c.updatedAt = now
	}
}

func (c *OwnerChange) Complete(now time.Time) {
	if c.status.Pending() {
		c.status = StatusCompleted
		c.updatedAt = now
	}
}

func (c *OwnerChange) Involves(projectID string) bool {
	return c.fromOwnerID == projectID || c.toOwnerID == projectID
}

func (c *OwnerChange) Transfer() reservation.Transfer {
	return reservation.Transfer{ID: c.id, Slot: c.slot, ToOwnerID: c.toOwnerID}
}

func (c *OwnerChange) ID() uuid.UUID           { return c.id }
func (c *OwnerChange) Resource() resource.Ref  { return c.resource }
func (c *OwnerChange) FromOwnerID() string     { return c.fromOwnerID }
func (c *OwnerChange) ToOwnerID() string       { return c.toOwnerID }
func (c *OwnerChange) Slot() interval.Interval { return c.slot }
func (c *OwnerChange) Status() Status          { return c.status }
func (c *OwnerChange) CreatedAt() time.Time    { return c.createdAt }
func (c *OwnerChange) UpdatedAt() time.Time    { return c.updatedAt }
