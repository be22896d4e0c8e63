package converter

import (
	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/pgconv"
)

func OwnerChangeToRow(c *ownerchange.OwnerChange) query.OwnerChange {
	return query.OwnerChange{
		ID:           c.ID(),
		ResourceType: c.Resource().Type,
		ResourceID:   c.Resource().ID,
		FromOwnerID:  c.FromOwnerID(),
		ToOwnerID:    c.ToOwnerID(),
		StartTime:    pgconv.TimeToPgtype(c.Slot().Start()),
		EndTime:      pgconv.TimeToPgtype(c.Slot().End()),
		Status:       c.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func OwnerChangeFromRow(row query.OwnerChange) (*ownerchange.OwnerChange, error) {
	slot, err := interval.New(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	return ownerchange.Reconstruct(
		row.ID,
		resource.Ref{Type: row.ResourceType, ID: row.ResourceID},
		row.FromOwnerID,
		row.ToOwnerID,
		slot,
		ownerchange.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
