package converter

import (
	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/pkg/props"
)

func OfferToRow(o *offer.Offer) (query.Offer, error) {
	properties, err := o.Properties().Marshal()
	if err != nil {
		return query.Offer{}, err
	}
	return query.Offer{
		ID:           o.ID(),
		Name:         o.Name(),
		ProjectID:    o.ProjectID(),
		LesseeID:     pgconv.StringPtrToPgtype(o.LesseeID()),
		ResourceType: o.Resource().Type,
		ResourceID:   o.Resource().ID,
		StartTime:    pgconv.TimeToPgtype(o.Slot().Start()),
		EndTime:      pgconv.TimeToPgtype(o.Slot().End()),
		Status:       o.Status().String(),
		Properties:   properties,
		CreatedAt:    pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

func OfferFromRow(row query.Offer) (*offer.Offer, error) {
	slot, err := interval.New(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	properties, err := props.Unmarshal(row.Properties)
	if err != nil {
		return nil, err
	}
	return offer.Reconstruct(
		row.ID,
		row.Name,
		row.ProjectID,
		pgconv.StringPtrFromPgtype(row.LesseeID),
		resource.Ref{Type: row.ResourceType, ID: row.ResourceID},
		slot,
		offer.Status(row.Status),
		properties,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OffersFromRows(rows []query.Offer) ([]*offer.Offer, error) {
	out := make([]*offer.Offer, 0, len(rows))
	for _, row := range rows {
		o, err := OfferFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
