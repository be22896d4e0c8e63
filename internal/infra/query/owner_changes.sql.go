package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getOwnerChange = `-- name: GetOwnerChange :one
SELECT id, resource_type, resource_id, from_owner_id, to_owner_id, start_time, end_time, status, created_at, updated_at
FROM owner_changes
WHERE id = $1
`

func (q *Queries) GetOwnerChange(ctx context.Context, db DBTX, id uuid.UUID) (OwnerChange, error) {
	return scanOwnerChange(db.QueryRow(ctx, getOwnerChange, id))
}

const listOwnerChanges = `-- name: ListOwnerChanges :many
SELECT id, resource_type, resource_id, from_owner_id, to_owner_id, start_time, end_time, status, created_at, updated_at
FROM owner_changes
WHERE ($1::text IS NULL OR resource_type = $1)
  AND ($2::text IS NULL OR resource_id = $2)
  AND ($3::text IS NULL OR from_owner_id = $3 OR to_owner_id = $3)
  AND ($4::text[] IS NULL OR cardinality($4::text[]) = 0 OR status = ANY($4::text[]))
  AND ($5::timestamptz IS NULL OR (start_time <= $5 AND end_time >= $6::timestamptz))
  AND ($7::timestamptz IS NULL OR (($7 >= start_time AND $7 < end_time)
                                OR ($8::timestamptz > start_time AND $8 <= end_time)
                                OR ($7 <= start_time AND $8 >= end_time)))
  AND ($9::timestamptz IS NULL OR start_time <= $9)
  AND ($10::timestamptz IS NULL OR end_time <= $10)
ORDER BY start_time, id
`

type ListOwnerChangesParams struct {
	ResourceType    pgtype.Text
	ResourceID      pgtype.Text
	FromOrToOwnerID pgtype.Text
	Statuses        []string
	ContainsStart   pgtype.Timestamptz
	ContainsEnd     pgtype.Timestamptz
	OverlapStart    pgtype.Timestamptz
	OverlapEnd      pgtype.Timestamptz
	StartsBy        pgtype.Timestamptz
	EndsBy          pgtype.Timestamptz
}

func (q *Queries) ListOwnerChanges(ctx context.Context, db DBTX, arg ListOwnerChangesParams) ([]OwnerChange, error) {
	rows, err := db.Query(ctx, listOwnerChanges,
		arg.ResourceType,
		arg.ResourceID,
		arg.FromOrToOwnerID,
		arg.Statuses,
		arg.ContainsStart,
		arg.ContainsEnd,
		arg.OverlapStart,
		arg.OverlapEnd,
		arg.StartsBy,
		arg.EndsBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OwnerChange
	for rows.Next() {
		i, err := scanOwnerChange(rows)
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

const createOwnerChange = `-- name: CreateOwnerChange :exec
INSERT INTO owner_changes (
    id, resource_type, resource_id, from_owner_id, to_owner_id,
    start_time, end_time, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
`

func (q *Queries) CreateOwnerChange(ctx context.Context, db DBTX, arg OwnerChange) error {
	_, err := db.Exec(ctx, createOwnerChange,
		arg.ID,
		arg.ResourceType,
		arg.ResourceID,
		arg.FromOwnerID,
		arg.ToOwnerID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateOwnerChange = `-- name: UpdateOwnerChange :execrows
UPDATE owner_changes
SET start_time = $2,
    end_time = $3,
    status = $4,
    updated_at = $5
WHERE id = $1
`

type UpdateOwnerChangeParams struct {
	ID        uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateOwnerChange(ctx context.Context, db DBTX, arg UpdateOwnerChangeParams) (int64, error) {
	tag, err := db.Exec(ctx, updateOwnerChange,
		arg.ID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteOwnerChange = `-- name: DeleteOwnerChange :execrows
DELETE FROM owner_changes WHERE id = $1
`

func (q *Queries) DeleteOwnerChange(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteOwnerChange, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanOwnerChange(row pgx.Row) (OwnerChange, error) {
	var i OwnerChange
	err := row.Scan(
		&i.ID,
		&i.ResourceType,
		&i.ResourceID,
		&i.FromOwnerID,
		&i.ToOwnerID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
