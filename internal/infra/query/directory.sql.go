package query

import "context"

const getResource = `-- name: GetResource :one
SELECT resource_type, resource_id, name, owner_project_id
FROM resources
WHERE resource_type = $1 AND (resource_id = $2 OR name = $2)
ORDER BY (resource_id = $2) DESC
LIMIT 1
`

// GetResource matches the identifier first, then the name.
func (q *Queries) GetResource(ctx context.Context, db DBTX, resourceType, ident string) (Resource, error) {
	row := db.QueryRow(ctx, getResource, resourceType, ident)
	var i Resource
	err := row.Scan(
		&i.ResourceType,
		&i.ResourceID,
		&i.Name,
		&i.OwnerProjectID,
	)
	return i, err
}

const getProject = `-- name: GetProject :one
SELECT id, name, parent_id
FROM projects
WHERE id = $1 OR name = $1
ORDER BY (id = $1) DESC
LIMIT 1
`

func (q *Queries) GetProject(ctx context.Context, db DBTX, ident string) (Project, error) {
	row := db.QueryRow(ctx, getProject, ident)
	var i Project
	err := row.Scan(&i.ID, &i.Name, &i.ParentID)
	return i, err
}

const listProjectLineage = `-- name: ListProjectLineage :many
WITH RECURSIVE lineage AS (
    SELECT id, parent_id, 0 AS depth
    FROM projects
    WHERE id = $1
    UNION ALL
    SELECT p.id, p.parent_id, l.depth + 1
    FROM projects p
    JOIN lineage l ON p.id = l.parent_id
    WHERE l.depth < 64
)
SELECT id FROM lineage ORDER BY depth
`

func (q *Queries) ListProjectLineage(ctx context.Context, db DBTX, projectID string) ([]string, error) {
	rows, err := db.Query(ctx, listProjectLineage, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const acquireResourceLock = `-- name: AcquireResourceLock :exec
SELECT pg_advisory_xact_lock(hashtext($1))
`

// AcquireResourceLock blocks until the transaction owns the lock for key.
// The lock is released on commit or rollback.
func (q *Queries) AcquireResourceLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireResourceLock, key)
	return err
}
