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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction, so fixtures can run inside a test tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestWorkshop inserts a workshop with one slot per label pair, every slot at full capacity.
func CreateTestWorkshop(t *testing.T, db DBLike, title string, capacity int, scheduledAt time.Time, labels ...[2]string) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	workshopID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO workshops (id, title, description, scheduled_at, capacity) VALUES ($1, $2, $3, $4, $5)",
		workshopID, title, "Fixture workshop for tests", scheduledAt, capacity)
	require.NoError(t, err)

	if len(labels) == 0 {
		labels = [][2]string{{"9:00 AM", "10:00 AM"}}
	}
	slotIDs := make([]uuid.UUID, 0, len(labels))
	for _, l := range labels {
		slotID := uuid.New()
		_, err := db.Exec(ctx,
			"INSERT INTO slots (id, workshop_id, start_label, end_label, remaining_seats) VALUES ($1, $2, $3, $4, $5)",
			slotID, workshopID, l[0], l[1], capacity)
		require.NoError(t, err)
		slotIDs = append(slotIDs, slotID)
	}
	return workshopID, slotIDs
}

func RemainingSeats(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()
	var remaining int
	err := db.QueryRow(context.Background(), "SELECT remaining_seats FROM slots WHERE id = $1", slotID).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func CountActiveBookings(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE slot_id = $1 AND status IN ('PENDING', 'CONFIRMED')", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxEvents(t *testing.T, db DBLike, aggregateID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE aggregate_id = $1", aggregateID).Scan(&n)
	require.NoError(t, err)
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
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
