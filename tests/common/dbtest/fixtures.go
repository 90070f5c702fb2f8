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

// InsertUnlock stores a record directly, bypassing the request flow.
func InsertUnlock(t *testing.T, db DBLike, email, caseStudyID, token string, unlockedAt *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO case_study_unlocks (id, email, case_study_id, token, unlocked_at) VALUES ($1, $2, $3, $4, $5)",
		id, email, caseStudyID, token, unlockedAt)
	require.NoError(t, err)
	return id
}

type UnlockRow struct {
	ID         uuid.UUID
	Token      string
	UnlockedAt *time.Time
}

// FindUnlocks returns every stored record for the pair.
func FindUnlocks(t *testing.T, db DBQuerier, email, caseStudyID string) []UnlockRow {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT id, token, unlocked_at FROM case_study_unlocks WHERE email = $1 AND case_study_id = $2",
		email, caseStudyID)
	require.NoError(t, err)
	defer rows.Close()

	var out []UnlockRow
	for rows.Next() {
		var r UnlockRow
		require.NoError(t, rows.Scan(&r.ID, &r.Token, &r.UnlockedAt))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

func MarkUnlocked(t *testing.T, db DBLike, email, caseStudyID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE case_study_unlocks SET unlocked_at = now() WHERE email = $1 AND case_study_id = $2",
		email, caseStudyID)
	require.NoError(t, err)
}

func CountContactRequests(t *testing.T, db DBLike, source string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM contact_requests WHERE source = $1", source).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose's version table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
