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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, display_name, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, price_cents) VALUES ($1, $2, $3)", productID, name, priceCents)
	require.NoError(t, err)
	return productID
}

type DealFixture struct {
	ProductID       uuid.UUID
	Name            string
	MinParticipants int
	Deadline        *time.Time
	IsActive        bool
	CreatedAt       time.Time
}

func CreateTestDeal(t *testing.T, db DBLike, f DealFixture) uuid.UUID {
	t.Helper()

	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	dealID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO deals (id, product_id, name, min_participants, deadline, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		dealID, f.ProductID, f.Name, f.MinParticipants, f.Deadline, f.IsActive, f.CreatedAt)
	require.NoError(t, err)
	return dealID
}

// AddTestMember inserts a membership directly, bypassing the join flow.
func AddTestMember(t *testing.T, db DBLike, dealID, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO deal_memberships (deal_id, user_id) VALUES ($1, $2)", dealID, userID)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
