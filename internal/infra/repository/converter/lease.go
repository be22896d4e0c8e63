package converter

import (
	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/pkg/props"
)

func LeaseToRow(l *lease.Lease) (query.Lease, error) {
	properties, err := l.Properties().Marshal()
	if err != nil {
		return query.Lease{}, err
	}
	return query.Lease{
		ID:           l.ID(),
		Name:         l.Name(),
		OfferID:      pgconv.UUIDPtrToPgtype(l.OfferID()),
		ProjectID:    l.ProjectID(),
		OwnerID:      l.OwnerID(),
		ResourceType: l.Resource().Type,
		ResourceID:   l.Resource().ID,
		StartTime:    pgconv.TimeToPgtype(l.Slot().Start()),
		EndTime:      pgconv.TimeToPgtype(l.Slot().End()),
		Status:       l.Status().String(),
		Properties:   properties,
		CreatedAt:    pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(l.UpdatedAt()),
	}, nil
}

func LeaseFromRow(row query.Lease) (*lease.Lease, error) {
	slot, err := interval.New(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	properties, err := props.Unmarshal(row.Properties)
	if err != nil {
		return nil, err
	}
	return lease.Reconstruct(
		row.ID,
		row.Name,
		pgconv.UUIDPtrFromPgtype(row.OfferID),
		row.ProjectID,
		row.OwnerID,
		resource.Ref{Type: row.ResourceType, ID: row.ResourceID},
		slot,
		lease.Status(row.Status),
		properties,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func LeasesFromRows(rows []query.Lease) ([]*lease.Lease, error) {
	out := make([]*lease.Lease, 0, len(rows))
	for _, row := range rows {
		l, err := LeaseFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
