package commands

import (
	"context"
	"log/slog"
	"time"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SweepResult struct {
	LeasesActivated       int
	LeasesExpired         int
	OffersExpired         int
	OwnerChangesActivated int
	OwnerChangesCompleted int
}

func (r SweepResult) Total() int {
	return r.LeasesActivated + r.LeasesExpired + r.OffersExpired + r.OwnerChangesActivated + r.OwnerChangesCompleted
}

// Sweeper moves reservations along their lifecycle as time passes.
type Sweeper interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type sweeperImpl struct {
	uow      shared.UnitOfWork
	recorder shared.Recorder
	clock    clock.Clock
}

func NewSweeper(uow shared.UnitOfWork, recorder shared.Recorder, clk clock.Clock) Sweeper {
	return &sweeperImpl{uow: uow, recorder: recorder, clock: clk}
}

// candidate is a reservation picked by a listing pass. Each one is
// re-read under its resource lock before it is touched.
type candidate struct {
	id  uuid.UUID
	ref resource.Ref
}

// Sweep runs one pass per kind concurrently. Within a kind, activation runs
// before expiry so a reservation whose whole window has passed ends up
// expired or completed.
func (s *sweeperImpl) Sweep(ctx context.Context) (SweepResult, error) {
	now := s.clock.Now()
	var result SweepResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if result.LeasesActivated, err = s.sweepLeases(ctx, now, true); err != nil {
			return err
		}
		result.LeasesExpired, err = s.sweepLeases(ctx, now, false)
		return err
	})
	g.Go(func() error {
		var err error
		result.OffersExpired, err = s.sweepOffers(ctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		if result.OwnerChangesActivated, err = s.sweepOwnerChanges(ctx, now, true); err != nil {
			return err
		}
		result.OwnerChangesCompleted, err = s.sweepOwnerChanges(ctx, now, false)
		return err
	})
	err := g.Wait()

	s.recorder.Transition(reservation.KindLease.String(), "activated", result.LeasesActivated)
	s.recorder.Transition(reservation.KindLease.String(), "expired", result.LeasesExpired)
	s.recorder.Transition(reservation.KindOffer.String(), "expired", result.OffersExpired)
	s.recorder.Transition(reservation.KindOwnerChange.String(), "activated", result.OwnerChangesActivated)
	s.recorder.Transition(reservation.KindOwnerChange.String(), "completed", result.OwnerChangesCompleted)

	if err != nil {
		return result, err
	}
	if result.Total() > 0 {
		slog.Info("sweep finished",
			"leases_activated", result.LeasesActivated,
			"leases_expired", result.LeasesExpired,
			"offers_expired", result.OffersExpired,
			"owner_changes_activated", result.OwnerChangesActivated,
			"owner_changes_completed", result.OwnerChangesCompleted)
	}
	return result, nil
}

func (s *sweeperImpl) sweepLeases(ctx context.Context, now time.Time, activate bool) (int, error) {
	filter := shared.LeaseFilter{Statuses: lease.HoldingStatuses, EndsBy: &now}
	if activate {
		filter = shared.LeaseFilter{Statuses: []lease.Status{lease.StatusCreated}, StartsBy: &now}
	}
	var candidates []candidate
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		leases, err := tx.Leases().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, l := range leases {
			candidates = append(candidates, candidate{id: l.ID(), ref: l.Resource()})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return s.apply(ctx, candidates, func(ctx context.Context, tx shared.Tx, id uuid.UUID) (bool, error) {
		l, err := tx.Leases().FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		before := l.Status()
		if activate {
			if l.Slot().Start().After(now) {
				return false, nil
			}
			l.Activate(now)
		} else {
			if l.Slot().End().After(now) {
				return false, nil
			}
			l.Expire(now)
		}
		if l.Status() == before {
			return false, nil
		}
		return true, tx.Leases().Update(ctx, l)
	})
}

func (s *sweeperImpl) sweepOffers(ctx context.Context, now time.Time) (int, error) {
	var candidates []candidate
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		offers, err := tx.Offers().List(ctx, shared.OfferFilter{
			Statuses: []offer.Status{offer.StatusAvailable},
			EndsBy:   &now,
		})
		if err != nil {
			return err
		}
		for _, o := range offers {
			candidates = append(candidates, candidate{id: o.ID(), ref: o.Resource()})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return s.apply(ctx, candidates, func(ctx context.Context, tx shared.Tx, id uuid.UUID) (bool, error) {
		o, err := tx.Offers().FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		if !o.IsAvailable() || o.Slot().End().After(now) {
			return false, nil
		}
		o.Expire(now)
		return true, tx.Offers().Update(ctx, o)
	})
}

func (s *sweeperImpl) sweepOwnerChanges(ctx context.Context, now time.Time, activate bool) (int, error) {
	filter := shared.OwnerChangeFilter{Statuses: ownerchange.PendingStatuses, EndsBy: &now}
	if activate {
		filter = shared.OwnerChangeFilter{Statuses: []ownerchange.Status{ownerchange.StatusCreated}, StartsBy: &now}
	}
	var candidates []candidate
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		changes, err := tx.OwnerChanges().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, c := range changes {
			candidates = append(candidates, candidate{id: c.ID(), ref: c.Resource()})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return s.apply(ctx, candidates, func(ctx context.Context, tx shared.Tx, id uuid.UUID) (bool, error) {
		c, err := tx.OwnerChanges().FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		before := c.Status()
		if activate {
			if c.Slot().Start().After(now) {
				return false, nil
			}
			c.Activate(now)
		} else {
			if c.Slot().End().After(now) {
				return false, nil
			}
			c.Complete(now)
		}
		if c.Status() == before {
			return false, nil
		}
		return true, tx.OwnerChanges().Update(ctx, c)
	})
}

// apply runs transition for every candidate in its own transaction under the
// candidate's resource lock. Rows deleted in the meantime are skipped.
func (s *sweeperImpl) apply(
	ctx context.Context,
	candidates []candidate,
	transition func(ctx context.Context, tx shared.Tx, id uuid.UUID) (bool, error),
) (int, error) {
	applied := 0
	for _, c := range candidates {
		var changed bool
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.LockResource(ctx, c.ref); err != nil {
				return err
			}
			var err error
			changed, err = transition(ctx, tx, c.id)
			return err
		})
		if infra.IsKind(err, infra.KindNotFound) {
			continue
		}
		if err != nil {
			return applied, err
		}
		if changed {
			applied++
		}
	}
	return applied, nil
}
