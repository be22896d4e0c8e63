package shared

import (
	"context"

	"lease-engine/internal/domain/resource"
)

type UnitOfWork interface {
	// Within: write transaction, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// LockResource serializes writers of one resource until the transaction ends.
	LockResource(ctx context.Context, ref resource.Ref) error
	Offers() OfferRepository
	Leases() LeaseRepository
	OwnerChanges() OwnerChangeRepository
}
