//go:build unit || e2e

package memstore

import (
	"context"
	"slices"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type offerRepo struct{ tx *memTx }

func (r offerRepo) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offers[id]
	if !ok {
		return nil, notFound("offer", id)
	}
	return cloneOffer(o), nil
}

func (r offerRepo) FindByName(_ context.Context, name string) ([]*offer.Offer, error) {
	return r.collect(func(o *offer.Offer) bool { return o.Name() == name }), nil
}

func (r offerRepo) List(_ context.Context, f shared.OfferFilter) ([]*offer.Offer, error) {
	return r.collect(func(o *offer.Offer) bool {
		if !matchRef(o.Resource(), f.Resource, f.ResourceType) {
			return false
		}
		if f.ProjectID != nil && o.ProjectID() != *f.ProjectID {
			return false
		}
		if f.Lessee != nil && !o.ClaimableBy(f.Lessee.ProjectID, f.Lessee.Lineage) {
			return false
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.Status()) {
			return false
		}
		return matchSlot(o.Slot(), f.Time, f.Overlapping, nil, f.EndsBy)
	}), nil
}

func (r offerRepo) collect(keep func(*offer.Offer) bool) []*offer.Offer {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*offer.Offer
	for _, o := range s.offers {
		if keep(o) {
			out = append(out, cloneOffer(o))
		}
	}
	sortByStart(out, func(o *offer.Offer) (time.Time, uuid.UUID) { return o.Slot().Start(), o.ID() })
	return out
}

func (r offerRepo) Create(_ context.Context, o *offer.Offer) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.offers[o.ID()]; exists {
		return infra.WrapRepoErr("offer already exists", errs.New(o.ID().String()), infra.KindDuplicateKey)
	}
	put(r.tx, s.offers, o.ID(), cloneOffer(o))
	return nil
}

func (r offerRepo) Update(_ context.Context, o *offer.Offer) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.offers[o.ID()]; !exists {
		return notFound("offer", o.ID())
	}
	put(r.tx, s.offers, o.ID(), cloneOffer(o))
	return nil
}

func (r offerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !remove(r.tx, s.offers, id) {
		return notFound("offer", id)
	}
	return nil
}

type leaseRepo struct{ tx *memTx }

func (r leaseRepo) FindByID(_ context.Context, id uuid.UUID) (*lease.Lease, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leases[id]
	if !ok {
		return nil, notFound("lease", id)
	}
	return cloneLease(l), nil
}

func (r leaseRepo) FindByName(_ context.Context, name string) ([]*lease.Lease, error) {
	return r.collect(func(l *lease.Lease) bool { return l.Name() == name }), nil
}

func (r leaseRepo) List(_ context.Context, f shared.LeaseFilter) ([]*lease.Lease, error) {
	return r.collect(func(l *lease.Lease) bool {
		if !matchRef(l.Resource(), f.Resource, f.ResourceType) {
			return false
		}
		if f.OfferID != nil && (l.OfferID() == nil || *l.OfferID() != *f.OfferID) {
			return false
		}
		if f.ProjectID != nil && l.ProjectID() != *f.ProjectID {
			return false
		}
		if f.OwnerID != nil && l.OwnerID() != *f.OwnerID {
			return false
		}
		if f.ProjectOrOwnerID != nil && !l.InvolvedProject(*f.ProjectOrOwnerID) {
			return false
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, l.Status()) {
			return false
		}
		return matchSlot(l.Slot(), f.Time, f.Overlapping, f.StartsBy, f.EndsBy)
	}), nil
}

func (r leaseRepo) collect(keep func(*lease.Lease) bool) []*lease.Lease {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*lease.Lease
	for _, l := range s.leases {
		if keep(l) {
			out = append(out, cloneLease(l))
		}
	}
	sortByStart(out, func(l *lease.Lease) (time.Time, uuid.UUID) { return l.Slot().Start(), l.ID() })
	return out
}

func (r leaseRepo) Create(_ context.Context, l *lease.Lease) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.leases[l.ID()]; exists {
		return infra.WrapRepoErr("lease already exists", errs.New(l.ID().String()), infra.KindDuplicateKey)
	}
	put(r.tx, s.leases, l.ID(), cloneLease(l))
	return nil
}

func (r leaseRepo) Update(_ context.Context, l *lease.Lease) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.leases[l.ID()]; !exists {
		return notFound("lease", l.ID())
	}
	put(r.tx, s.leases, l.ID(), cloneLease(l))
	return nil
}

func (r leaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !remove(r.tx, s.leases, id) {
		return notFound("lease", id)
	}
	return nil
}

type ownerChangeRepo struct{ tx *memTx }

func (r ownerChangeRepo) FindByID(_ context.Context, id uuid.UUID) (*ownerchange.OwnerChange, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.changes[id]
	if !ok {
		return nil, notFound("owner change", id)
	}
	return cloneOwnerChange(c), nil
}

func (r ownerChangeRepo) List(_ context.Context, f shared.OwnerChangeFilter) ([]*ownerchange.OwnerChange, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ownerchange.OwnerChange
	for _, c := range s.changes {
		if !matchRef(c.Resource(), f.Resource, nil) {
			continue
		}
		if f.FromOrToOwnerID != nil && !c.Involves(*f.FromOrToOwnerID) {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Status()) {
			continue
		}
		if f.Containing != nil && !interval.Within(*f.Containing, c.Slot()) {
			continue
		}
		if !matchSlot(c.Slot(), nil, f.Overlapping, f.StartsBy, f.EndsBy) {
			continue
		}
		out = append(out, cloneOwnerChange(c))
	}
	sortByStart(out, func(c *ownerchange.OwnerChange) (time.Time, uuid.UUID) { return c.Slot().Start(), c.ID() })
	return out, nil
}

func (r ownerChangeRepo) Create(_ context.Context, c *ownerchange.OwnerChange) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.changes[c.ID()]; exists {
		return infra.WrapRepoErr("owner change already exists", errs.New(c.ID().String()), infra.KindDuplicateKey)
	}
	put(r.tx, s.changes, c.ID(), cloneOwnerChange(c))
	return nil
}

func (r ownerChangeRepo) Update(_ context.Context, c *ownerchange.OwnerChange) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.changes[c.ID()]; !exists {
		return notFound("owner change", c.ID())
	}
	put(r.tx, s.changes, c.ID(), cloneOwnerChange(c))
	return nil
}

func (r ownerChangeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !remove(r.tx, s.changes, id) {
		return notFound("owner change", id)
	}
	return nil
}

func matchRef(ref resource.Ref, want *resource.Ref, resourceType *string) bool {
	if want != nil && ref != *want {
		return false
	}
	return resourceType == nil || ref.Type == *resourceType
}

// matchSlot mirrors the time predicates of the SQL listing queries.
func matchSlot(slot interval.Interval, tf *shared.TimeFilter, overlapping *interval.Interval, startsBy, endsBy *time.Time) bool {
	start, end := slot.Start(), slot.End()
	if tf != nil {
		switch tf.Mode {
		case shared.TimeModeWithin:
			startIn := !tf.Start.After(start) && !tf.End.Before(start)
			endIn := !tf.Start.After(end) && !tf.End.Before(end)
			if !startIn && !endIn {
				return false
			}
		default:
			if start.After(tf.Start) || end.Before(tf.End) {
				return false
			}
		}
	}
	if overlapping != nil && !interval.Overlaps(slot, *overlapping) {
		return false
	}
	if startsBy != nil && start.After(*startsBy) {
		return false
	}
	if endsBy != nil && end.After(*endsBy) {
		return false
	}
	return true
}
