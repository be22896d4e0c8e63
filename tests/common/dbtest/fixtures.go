//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference projects and resources seeded into every test database.
// "child" sits under "other" so lessee hierarchy rules can be exercised.
const (
	OwnerProject = "owner"
	OtherProject = "other"
	ChildProject = "child"

	Node1 = "node-1"
	Node2 = "node-2"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestProject(t *testing.T, db DBLike, id, parent string) {
	t.Helper()

	var parentID any
	if parent != "" {
		parentID = parent
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO projects (id, name, parent_id) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, id+"-name", parentID)
	require.NoError(t, err)
}

func CreateTestResource(t *testing.T, db DBLike, resourceType, id, name, owner string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (resource_type, resource_id, name, owner_project_id) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING",
		resourceType, id, name, owner)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO projects (id, name, parent_id) VALUES
		    ('owner', 'owner-name', NULL),
		    ('other', 'other-name', NULL),
		    ('child', 'child-name', 'other')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO resources (resource_type, resource_id, name, owner_project_id) VALUES
		    ('ironic_node', 'node-1', 'rack-a-01', 'owner'),
		    ('ironic_node', 'node-2', 'rack-a-02', 'owner')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
