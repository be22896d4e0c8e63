package converter

import (
	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func OfferFilterToParams(f shared.OfferFilter) query.ListOffersParams {
	p := query.ListOffersParams{
		ResourceType: pgconv.StringPtrToPgtype(f.ResourceType),
		ProjectID:    pgconv.StringPtrToPgtype(f.ProjectID),
		Statuses:     statusStrings(f.Statuses),
		EndsBy:       pgconv.TimePtrToPgtype(f.EndsBy),
	}
	if f.Resource != nil {
		p.ResourceType = pgtype.Text{String: f.Resource.Type, Valid: true}
		p.ResourceID = pgtype.Text{String: f.Resource.ID, Valid: true}
	}
	if f.Lessee != nil {
		p.LesseeProjectID = pgtype.Text{String: f.Lessee.ProjectID, Valid: true}
		p.LesseeLineage = f.Lessee.Lineage
	}
	p.CoversStart, p.CoversEnd, p.WithinStart, p.WithinEnd = timeFilterParams(f.Time)
	p.OverlapStart, p.OverlapEnd = intervalParams(f.Overlapping)
	return p
}

func LeaseFilterToParams(f shared.LeaseFilter) query.ListLeasesParams {
	p := query.ListLeasesParams{
		ResourceType:     pgconv.StringPtrToPgtype(f.ResourceType),
		OfferID:          pgconv.UUIDPtrToPgtype(f.OfferID),
		ProjectID:        pgconv.StringPtrToPgtype(f.ProjectID),
		OwnerID:          pgconv.StringPtrToPgtype(f.OwnerID),
		ProjectOrOwnerID: pgconv.StringPtrToPgtype(f.ProjectOrOwnerID),
		Statuses:         statusStrings(f.Statuses),
		StartsBy:         pgconv.TimePtrToPgtype(f.StartsBy),
		EndsBy:           pgconv.TimePtrToPgtype(f.EndsBy),
	}
	if f.Resource != nil {
		p.ResourceType = pgtype.Text{String: f.Resource.Type, Valid: true}
		p.ResourceID = pgtype.Text{String: f.Resource.ID, Valid: true}
	}
	p.CoversStart, p.CoversEnd, p.WithinStart, p.WithinEnd = timeFilterParams(f.Time)
	p.OverlapStart, p.OverlapEnd = intervalParams(f.Overlapping)
	return p
}

func OwnerChangeFilterToParams(f shared.OwnerChangeFilter) query.ListOwnerChangesParams {
	p := query.ListOwnerChangesParams{
		FromOrToOwnerID: pgconv.StringPtrToPgtype(f.FromOrToOwnerID),
		Statuses:        statusStrings(f.Statuses),
		StartsBy:        pgconv.TimePtrToPgtype(f.StartsBy),
		EndsBy:          pgconv.TimePtrToPgtype(f.EndsBy),
	}
	if f.Resource != nil {
		p.ResourceType = pgtype.Text{String: f.Resource.Type, Valid: true}
		p.ResourceID = pgtype.Text{String: f.Resource.ID, Valid: true}
	}
	p.ContainsStart, p.ContainsEnd = intervalParams(f.Containing)
	p.OverlapStart, p.OverlapEnd = intervalParams(f.Overlapping)
	return p
}

func timeFilterParams(tf *shared.TimeFilter) (coversStart, coversEnd, withinStart, withinEnd pgtype.Timestamptz) {
	if tf == nil {
		return
	}
	if tf.Mode == shared.TimeModeWithin {
		return coversStart, coversEnd, pgconv.TimeToPgtype(tf.Start), pgconv.TimeToPgtype(tf.End)
	}
	return pgconv.TimeToPgtype(tf.Start), pgconv.TimeToPgtype(tf.End), withinStart, withinEnd
}

func intervalParams(iv *interval.Interval) (start, end pgtype.Timestamptz) {
	if iv == nil {
		return
	}
	return pgconv.TimeToPgtype(iv.Start()), pgconv.TimeToPgtype(iv.End())
}

type status interface {
	offer.Status | lease.Status | ownerchange.Status
}

func statusStrings[S status](in []S) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
