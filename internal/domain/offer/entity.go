package offer

import (
	"slices"
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

var ErrNameTooLong = errs.New("offer name is too long (max 255 characters)")

type Offer struct {
	id         uuid.UUID
	name       string
	projectID  string
	lesseeID   *string
	resource   resource.Ref
	slot       interval.Interval
	status     Status
	properties props.Properties
	createdAt  time.Time
	updatedAt  time.Time
}

type NewParams struct {
	Name       string
	ProjectID  string
	LesseeID   *string
	Resource   resource.Ref
	Slot       interval.Interval
	Properties props.Properties
}

func New(p NewParams, now time.Time) (*Offer, error) {
	name := strings.TrimSpace(p.Name)
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if p.Slot.IsZero() {
		return nil, errs.Mark(errs.New("offer requires a time range"), errs.ErrInvalidTimeRange)
	}
	return &Offer{
		id:         uuid.New(),
		name:       name,
		projectID:  p.ProjectID,
		lesseeID:   p.LesseeID,
		resource:   p.Resource,
		slot:       p.Slot,
		status:     StatusAvailable,
		properties: p.Properties.Clone(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds a persisted offer without validation.
func Reconstruct(
	id uuid.UUID,
	name, projectID string,
	lesseeID *string,
	ref resource.Ref,
	slot interval.Interval,
	status Status,
	properties props.Properties,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:         id,
		name:       name,
		projectID:  projectID,
		lesseeID:   lesseeID,
		resource:   ref,
		slot:       slot,
		status:     status,
		properties: properties,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Patch lists the fields an update may touch. Identity fields (id, owning
// project, resource) have no entry and cannot be overwritten.
type Patch struct {
	Name       *string
	Start      *time.Time
	End        *time.Time
	Status     *Status
	Properties props.Properties
}

// Apply merges p into the offer. It reports whether the result must be
// checked for conflicts again: the offer blocks its window and either the
// window moved or the offer did not block before.
func (o *Offer) Apply(p Patch, now time.Time) (bool, error) {
	slot, err := interval.New(patch.Coalesce(p.Start, o.slot.Start()), patch.Coalesce(p.End, o.slot.End()))
	if err != nil {
		return false, err
	}
	if p.Status != nil && !p.Status.IsValid() {
		return false, errs.Mark(errs.Newf("unknown offer status %q", *p.Status), errs.ErrInvalidStatus)
	}
	status := patch.Coalesce(p.Status, o.status)
	if status != o.status && o.status.Terminal() {
		return false, errs.Mark(errs.Newf("offer %s is %s and cannot become %s", o.id, o.status, status), errs.ErrInvalidStatus)
	}
	name := patch.Text(p.Name, o.name)
	if len(name) > MaxNameLength {
		return false, ErrNameTooLong
	}
	merged, err := props.Merge(o.properties, p.Properties)
	if err != nil {
		return false, err
	}

	recheck := status.Blocks() && (!slot.Equal(o.slot) || !o.status.Blocks())
	o.name = name
	o.slot = slot
	o.status = status
	o.properties = merged
	o.updatedAt = now
	return recheck, nil
}

func (o *Offer) Cancel(now time.Time) error {
	if o.status != StatusAvailable {
		return errs.Mark(errs.Newf("offer %s is %s", o.id, o.status), errs.ErrInvalidStatus)
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

func (o *Offer) Expire(now time.Time) {
	o.status = StatusExpired
	o.updatedAt = now
}

// ClaimableBy applies the lessee restriction: the owner, any project when the
// offer is unrestricted, or the restricted lessee and its descendants.
// lineage is the candidate project followed by its ancestors.
func (o *Offer) ClaimableBy(projectID string, lineage []string) bool {
	if projectID == o.projectID || o.lesseeID == nil {
		return true
	}
	return *o.lesseeID == projectID || slices.Contains(lineage, *o.lesseeID)
}

func (o *Offer) IsAvailable() bool {
	return o.status == StatusAvailable
}

func (o *Offer) ID() uuid.UUID                { return o.id }
func (o *Offer) Name() string                 { return o.name }
func (o *Offer) ProjectID() string            { return o.projectID }
func (o *Offer) LesseeID() *string            { return o.lesseeID }
func (o *Offer) Resource() resource.Ref       { return o.resource }
func (o *Offer) Slot() interval.Interval      { return o.slot }
func (o *Offer) Status() Status               { return o.status }
func (o *Offer) Properties() props.Properties { return o.properties }
func (o *Offer) CreatedAt() time.Time         { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time         { return o.updatedAt }
