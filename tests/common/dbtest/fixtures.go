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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestItem(t *testing.T, db DBLike, title, author string) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO items (id, title, author, available) VALUES ($1, $2, $3, true)",
		itemID, title, author)
	require.NoError(t, err)

	return itemID
}

// CreateHeldItem inserts an item already checked out to holderID, together
// with the matching active borrow row and patron counter. dueDate controls
// how overdue the loan is.
func CreateHeldItem(t *testing.T, db DBLike, title, author string, holderID uuid.UUID, dueDate time.Time) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO items (id, title, author, available, held_by) VALUES ($1, $2, $3, false, $4)",
		itemID, title, author, holderID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO borrows (id, patron_id, item_id, item_title, item_author, borrowed_at, due_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'active')`,
		uuid.New(), holderID, itemID, title, author, dueDate.Add(-14*24*time.Hour), dueDate)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO patrons (id, active_borrows) VALUES ($1, 1)
		 ON CONFLICT (id) DO UPDATE SET active_borrows = patrons.active_borrows + 1`,
		holderID)
	require.NoError(t, err)

	return itemID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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

	return nil
}
