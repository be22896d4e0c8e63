//go:build unit || e2e

// Package memstore is an in-memory unit of work for use case tests. Writers
// of one resource are serialized the way the Postgres advisory lock does it,
// and a failed transaction is rolled back from an undo journal.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in read-only transaction")

type Store struct {
	mu      sync.Mutex
	offers  map[uuid.UUID]*offer.Offer
	leases  map[uuid.UUID]*lease.Lease
	changes map[uuid.UUID]*ownerchange.OwnerChange

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		offers:  map[uuid.UUID]*offer.Offer{},
		leases:  map[uuid.UUID]*lease.Lease{},
		changes: map[uuid.UUID]*ownerchange.OwnerChange{},
		locks:   map[string]*sync.Mutex{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s}
	defer tx.release()
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s, readOnly: true}
	return fn(ctx, tx)
}

// Seed helpers bypass transactions and locking.

func (s *Store) SeedOffer(o *offer.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID()] = cloneOffer(o)
}

func (s *Store) SeedLease(l *lease.Lease) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leases[l.ID()] = cloneLease(l)
}

func (s *Store) SeedOwnerChange(c *ownerchange.OwnerChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes[c.ID()] = cloneOwnerChange(c)
}

// Offer returns a copy of a stored offer, or nil.
func (s *Store) Offer(id uuid.UUID) *offer.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.offers[id]; ok {
		return cloneOffer(o)
	}
	return nil
}

func (s *Store) Lease(id uuid.UUID) *lease.Lease {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.leases[id]; ok {
		return cloneLease(l)
	}
	return nil
}

func (s *Store) OwnerChange(id uuid.UUID) *ownerchange.OwnerChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.changes[id]; ok {
		return cloneOwnerChange(c)
	}
	return nil
}

// Leases returns every stored lease ordered by start time.
func (s *Store) Leases() []*lease.Lease {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*lease.Lease, 0, len(s.leases))
	for _, l := range s.leases {
		out = append(out, cloneLease(l))
	}
	sortByStart(out, func(l *lease.Lease) (time.Time, uuid.UUID) { return l.Slot().Start(), l.ID() })
	return out
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

type memTx struct {
	store    *Store
	readOnly bool
	held     []*sync.Mutex
	heldKeys map[string]bool
	undo     []func()
}

func (t *memTx) LockResource(_ context.Context, ref resource.Ref) error {
	if t.readOnly {
		return errs.Wrap(errReadOnly, "lock resource")
	}
	key := ref.LockKey()
	if t.heldKeys[key] {
		return nil
	}
	m := t.store.lockFor(key)
	m.Lock()
	if t.heldKeys == nil {
		t.heldKeys = map[string]bool{}
	}
	t.heldKeys[key] = true
	t.held = append(t.held, m)
	return nil
}

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
	t.heldKeys = nil
}

func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) Offers() shared.OfferRepository             { return offerRepo{t} }
func (t *memTx) Leases() shared.LeaseRepository             { return leaseRepo{t} }
func (t *memTx) OwnerChanges() shared.OwnerChangeRepository { return ownerChangeRepo{t} }

// put stores v under id in m and journals the previous state. Callers hold
// the store mutex.
func put[T any](t *memTx, m map[uuid.UUID]T, id uuid.UUID, v T) {
	prev, existed := m[id]
	m[id] = v
	t.undo = append(t.undo, func() {
		if existed {
			m[id] = prev
		} else {
			delete(m, id)
		}
	})
}

func remove[T any](t *memTx, m map[uuid.UUID]T, id uuid.UUID) bool {
	prev, existed := m[id]
	if !existed {
		return false
	}
	delete(m, id)
	t.undo = append(t.undo, func() { m[id] = prev })
	return true
}

func sortByStart[T any](items []T, key func(T) (time.Time, uuid.UUID)) {
	sort.Slice(items, func(i, j int) bool {
		si, ii := key(items[i])
		sj, ij := key(items[j])
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return ii.String() < ij.String()
	})
}

func notFound(kind string, id uuid.UUID) error {
	return infra.NotFound(kind + " " + id.String() + " not found")
}
