package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getLease = `-- name: GetLease :one
SELECT id, name, offer_id, project_id, owner_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM leases
WHERE id = $1
`

func (q *Queries) GetLease(ctx context.Context, db DBTX, id uuid.UUID) (Lease, error) {
	return scanLease(db.QueryRow(ctx, getLease, id))
}

const listLeasesByName = `-- name: ListLeasesByName :many
SELECT id, name, offer_id, project_id, owner_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM leases
WHERE name = $1
ORDER BY start_time, id
`

func (q *Queries) ListLeasesByName(ctx context.Context, db DBTX, name string) ([]Lease, error) {
	rows, err := db.Query(ctx, listLeasesByName, name)
	if err != nil {
		return nil, err
	}
	return collectLeases(rows)
}

const listLeases = `-- name: ListLeases :many
SELECT id, name, offer_id, project_id, owner_id, resource_type, resource_id, start_time, end_time, status, properties, created_at, updated_at
FROM leases
WHERE ($1::text IS NULL OR resource_type = $1)
  AND ($2::text IS NULL OR resource_id = $2)
  AND ($3::uuid IS NULL OR offer_id = $3)
  AND ($4::text IS NULL OR project_id = $4)
  AND ($5::text IS NULL OR owner_id = $5)
  AND ($6::text IS NULL OR project_id = $6 OR owner_id = $6)
  AND ($7::text[] IS NULL OR cardinality($7::text[]) = 0 OR status = ANY($7::text[]))
  AND ($8::timestamptz IS NULL OR (start_time <= $8 AND end_time >= $9::timestamptz))
  AND ($10::timestamptz IS NULL OR (($10 <= start_time AND $11::timestamptz >= start_time)
                                 OR ($10 <= end_time AND $11 >= end_time)))
  AND ($12::timestamptz IS NULL OR (($12 >= start_time AND $12 < end_time)
                                 OR ($13::timestamptz > start_time AND $13 <= end_time)
                                 OR ($12 <= start_time AND $13 >= end_time)))
  AND ($14::timestamptz IS NULL OR start_time <= $14)
  AND ($15::timestamptz IS NULL OR end_time <= $15)
ORDER BY start_time, id
`

type ListLeasesParams struct {
	ResourceType     pgtype.Text
	ResourceID       pgtype.Text
	OfferID          pgtype.UUID
	ProjectID        pgtype.Text
	OwnerID          pgtype.Text
	ProjectOrOwnerID pgtype.Text
	Statuses         []string
	CoversStart      pgtype.Timestamptz
	CoversEnd        pgtype.Timestamptz
	WithinStart      pgtype.Timestamptz
	WithinEnd        pgtype.Timestamptz
	OverlapStart     pgtype.Timestamptz
	OverlapEnd       pgtype.Timestamptz
	StartsBy         pgtype.Timestamptz
	EndsBy           pgtype.Timestamptz
}

func (q *Queries) ListLeases(ctx context.Context, db DBTX, arg ListLeasesParams) ([]Lease, error) {
	rows, err := db.Query(ctx, listLeases,
		arg.ResourceType,
		arg.ResourceID,
		arg.OfferID,
		arg.ProjectID,
		arg.OwnerID,
		arg.ProjectOrOwnerID,
		arg.Statuses,
		arg.CoversStart,
		arg.CoversEnd,
		arg.WithinStart,
		arg.WithinEnd,
		arg.OverlapStart,
		arg.OverlapEnd,
		arg.StartsBy,
		arg.EndsBy,
	)
	if err != nil {
		return nil, err
	}
	return collectLeases(rows)
}

const createLease = `-- name: CreateLease :exec
INSERT INTO leases (
    id, name, offer_id, project_id, owner_id, resource_type, resource_id,
    start_time, end_time, status, properties, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
`

func (q *Queries) CreateLease(ctx context.Context, db DBTX, arg Lease) error {
	_, err := db.Exec(ctx, createLease,
		arg.ID,
		arg.Name,
		arg.OfferID,
		arg.ProjectID,
		arg.OwnerID,
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

const updateLease = `-- name: UpdateLease :execrows
UPDATE leases
SET name = $2,
    start_time = $3,
    end_time = $4,
    status = $5,
    properties = $6,
    updated_at = $7
WHERE id = $1
`

type UpdateLeaseParams struct {
	ID         uuid.UUID
	Name       string
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
	Status     string
	Properties []byte
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateLease(ctx context.Context, db DBTX, arg UpdateLeaseParams) (int64, error) {
	tag, err := db.Exec(ctx, updateLease,
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

const deleteLease = `-- name: DeleteLease :execrows
DELETE FROM leases WHERE id = $1
`

func (q *Queries) DeleteLease(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteLease, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanLease(row pgx.Row) (Lease, error) {
	var i Lease
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.OfferID,
		&i.ProjectID,
		&i.OwnerID,
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

func collectLeases(rows pgx.Rows) ([]Lease, error) {
	defer rows.Close()
	var items []Lease
	for rows.Next() {
		i, err := scanLease(rows)
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
