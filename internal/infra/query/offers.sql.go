package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getOffer = `-- name: GetOffer :one
SELECT id, name, project_id, lessee_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM offers
WHERE id = $1
`

func (q *Queries) GetOffer(ctx context.Context, db DBTX, id uuid.UUID) (Offer, error) {
	return scanOffer(db.QueryRow(ctx, getOffer, id))
}

const listOffersByName = `-- name: ListOffersByName :many
SELECT id, name, project_id, lessee_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM offers
WHERE name = $1
ORDER BY start_time, id
`

func (q *Queries) ListOffersByName(ctx context.Context, db DBTX, name string) ([]Offer, error) {
	rows, err := db.Query(ctx, listOffersByName, name)
	if err != nil {
		return nil, err
	}
	return collectOffers(rows)
}

const listOffers = `-- name: ListOffers :many
SELECT id, name, project_id, lessee_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM offers
WHERE ($1::text IS NULL OR resource_type = $1)
  AND ($2::text IS NULL OR resource_id = $2)
  AND ($3::text IS NULL OR project_id = $3)
  AND ($4::text IS NULL OR project_id = $4 OR lessee_id IS NULL OR lessee_id = ANY($5::text[]))
  AND ($6::text[] IS NULL OR cardinality($6::text[]) = 0 OR status = ANY($6::text[]))
  AND ($7::timestamptz IS NULL OR (start_time <= $7 AND end_time >= $8::timestamptz))
  AND ($9::timestamptz IS NULL OR (($9 <= start_time AND $10::timestamptz >= start_time)
                                OR ($9 <= end_time AND $10 >= end_time)))
  AND ($11::timestamptz IS NULL OR (($11 >= start_time AND $11 < end_time)
                                 OR ($12::timestamptz > start_time AND $12 <= end_time)
                                 OR ($11 <= start_time AND $12 >= end_time)))
  AND ($13::timestamptz IS NULL OR end_time <= $13)
ORDER BY start_time, id
`

type ListOffersParams struct {
	ResourceType    pgtype.Text
	ResourceID      pgtype.Text
	ProjectID       pgtype.Text
	LesseeProjectID pgtype.Text
	LesseeLineage   []string
	Statuses        []string
	CoversStart     pgtype.Timestamptz
	CoversEnd       pgtype.Timestamptz
	WithinStart     pgtype.Timestamptz
	WithinEnd       pgtype.Timestamptz
	OverlapStart    pgtype.Timestamptz
	OverlapEnd      pgtype.Timestamptz
	EndsBy          pgtype.Timestamptz
}

func (q *Queries) ListOffers(ctx context.Context, db DBTX, arg ListOffersParams) ([]Offer, error) {
	rows, err := db.Query(ctx, listOffers,
		arg.ResourceType,
		arg.ResourceID,
		arg.ProjectID,
		arg.LesseeProjectID,
		arg.LesseeLineage,
		arg.Statuses,
		arg.CoversStart,
		arg.CoversEnd,
		arg.WithinStart,
		arg.WithinEnd,
		arg.OverlapStart,
		arg.OverlapEnd,
		arg.EndsBy,
	)
	if err != nil {
		return nil, err
	}
	return collectOffers(rows)
}

const createOffer = `-- name: CreateOffer :exec
INSERT INTO offers (
    id, name, project_id, lessee_id, resource_type, resource_id,
    start_time, end_time, status, properties, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
`

func (q *Queries) CreateOffer(ctx context.Context, db DBTX, arg Offer) error {
	_, err := db.Exec(ctx, createOffer,
		arg.ID,
		arg.Name,
		arg.ProjectID,
		arg.LesseeID,
		arg.ResourceType,
		arg.ResourceID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Properties,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateOffer = `-- name: UpdateOffer :execrows
UPDATE offers
SET name = $2,
    start_time = $3,
    end_time = $4,
    status = $5,
    properties = $6,
    updated_at = $7
WHERE id = $1
`

type UpdateOfferParams struct {
	ID         uuid.UUID
	Name       string
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
	Status     string
	Properties []byte
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateOffer(ctx context.Context, db DBTX, arg UpdateOfferParams) (int64, error) {
	tag, err := db.Exec(ctx, updateOffer,
		arg.ID,
		arg.Name,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Properties,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteOffer = `-- name: DeleteOffer :execrows
DELETE FROM offers WHERE id = $1
`

func (q *Queries) DeleteOffer(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteOffer, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanOffer(row pgx.Row) (Offer, error) {
	var i Offer
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ProjectID,
		&i.LesseeID,
		&i.ResourceType,
		&i.ResourceID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.Properties,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectOffers(rows pgx.Rows) ([]Offer, error) {
	defer rows.Close()
	var items []Offer
	for rows.Next() {
		i, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
