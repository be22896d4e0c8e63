//go:build unit || e2e

package memstore

import (
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
)

func cloneOffer(o *offer.Offer) *offer.Offer {
	var lessee *string
	if o.LesseeID() != nil {
		v := *o.LesseeID()
		lessee = &v
	}
	return offer.Reconstruct(o.ID(), o.Name(), o.ProjectID(), lessee, o.Resource(), o.Slot(),
		o.Status(), o.Properties().Clone(), o.CreatedAt(), o.UpdatedAt())
}

func cloneLease(l *lease.Lease) *lease.Lease {
	return lease.Reconstruct(l.ID(), l.Name(), l.OfferID(), l.ProjectID(), l.OwnerID(), l.Resource(), l.Slot(),
		l.Status(), l.Properties().Clone(), l.CreatedAt(), l.UpdatedAt())
}

func cloneOwnerChange(c *ownerchange.OwnerChange) *ownerchange.OwnerChange {
	return ownerchange.Reconstruct(c.ID(), c.Resource(), c.FromOwnerID(), c.ToOwnerID(), c.Slot(),
		c.Status(), c.CreatedAt(), c.UpdatedAt())
}
