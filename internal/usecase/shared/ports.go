package shared

import (
	"context"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// Repositories return infra.RepositoryError with KindNotFound for missing rows.
// List results are ordered by start time.

type OfferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	FindByName(ctx context.Context, name string) ([]*offer.Offer, error)
	List(ctx context.Context, filter OfferFilter) ([]*offer.Offer, error)
	Create(ctx context.Context, o *offer.Offer) error
	Update(ctx context.Context, o *offer.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LeaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lease.Lease, error)
	FindByName(ctx context.Context, name string) ([]*lease.Lease, error)
	List(ctx context.Context, filter LeaseFilter) ([]*lease.Lease, error)
	Create(ctx context.Context, l *lease.Lease) error
	Update(ctx context.Context, l *lease.Lease) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OwnerChangeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ownerchange.OwnerChange, error)
	List(ctx context.Context, filter OwnerChangeFilter) ([]*ownerchange.OwnerChange, error)
	Create(ctx context.Context, c *ownerchange.OwnerChange) error
	Update(ctx context.Context, c *ownerchange.OwnerChange) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceResolver turns a caller supplied id or name into the canonical
// resource known to the inventory.
type ResourceResolver interface {
	Resolve(ctx context.Context, resourceType, ident string) (*resource.Resource, error)
}

// ProjectResolver maps project ids or names to canonical ids and walks the
// project hierarchy.
type ProjectResolver interface {
	Canonical(ctx context.Context, ident string) (string, error)
	// Lineage returns projectID followed by its ancestors, nearest first.
	Lineage(ctx context.Context, projectID string) ([]string, error)
}

// Recorder receives reservation outcomes for metrics.
type Recorder interface {
	Reservation(kind, operation, outcome string)
	Transition(kind, transition string, count int)
}

type NopRecorder struct{}

func (NopRecorder) Reservation(string, string, string) {}
func (NopRecorder) Transition(string, string, int)     {}
