//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgconv.CodeSerializationFailure}, want: true},
		{name: "deadlock detected", err: &pgconn.PgError{Code: pgconv.CodeDeadlockDetected}, want: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgconv.CodeLockNotAvailable}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgconv.CodeUniqueViolation}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
		{
			name: "lock timeout behind repository error",
			err:  infra.WrapRepoErr("failed to lock slot", &pgconn.PgError{Code: pgconv.CodeLockNotAvailable}),
			want: true,
		},
		{
			name: "deadlock behind mark",
			err:  errs.Mark(&pgconn.PgError{Code: pgconv.CodeDeadlockDetected}, errTransactionCommit),
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor, "attempt %d", attempt)
		assert.Less(t, wait, floor+floor/5, "attempt %d", attempt)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))

	for range 100 {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}

// stubTx implements only what the retry loop calls; anything else panics on the nil embed.
type stubTx struct {
	pgx.Tx
	commits   int
	rollbacks int
}

func (t *stubTx) Commit(context.Context) error   { t.commits++; return nil }
func (t *stubTx) Rollback(context.Context) error { t.rollbacks++; return pgx.ErrTxClosed }

// scriptedBeginner fails BeginTx with the queued errors, then hands out tx.
type scriptedBeginner struct {
	failures []error
	calls    int
	tx       *stubTx
}

func (b *scriptedBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	b.calls++
	if len(b.failures) > 0 {
		err := b.failures[0]
		b.failures = b.failures[1:]
		return nil, err
	}
	return b.tx, nil
}

func newTestUoW(db txBeginner) *PostgresUoW {
	return &PostgresUoW{db: db, baseBackoff: time.Millisecond}
}

func TestWithin_BeginFailures(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgconv.CodeSerializationFailure}
	lockTimeout := &pgconn.PgError{Code: pgconv.CodeLockNotAvailable}

	t.Run("retryable begin failure is retried", func(t *testing.T) {
		db := &scriptedBeginner{failures: []error{serialization, lockTimeout}, tx: &stubTx{}}
		runs := 0

		err := newTestUoW(db).Within(context.Background(), func(context.Context, shared.Tx) error {
			runs++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, db.calls)
		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, db.tx.commits)
	})

	t.Run("exhausted retries are transient", func(t *testing.T) {
		failures := make([]error, maxRetries+1)
		for i := range failures {
			failures[i] = serialization
		}
		db := &scriptedBeginner{failures: failures, tx: &stubTx{}}

		err := newTestUoW(db).Within(context.Background(), func(context.Context, shared.Tx) error {
			t.Fatal("callback must not run without a transaction")
			return nil
		})

		require.Error(t, err)
		assert.Equal(t, maxRetries+1, db.calls)
		assert.True(t, errs.Is(err, shared.ErrTransient))
		assert.True(t, errs.Is(err, errTransactionBegin))
	})

	t.Run("non-retryable begin failure returns at once", func(t *testing.T) {
		db := &scriptedBeginner{failures: []error{errors.New("connection refused")}, tx: &stubTx{}}

		err := newTestUoW(db).Within(context.Background(), func(context.Context, shared.Tx) error { return nil })

		require.Error(t, err)
		assert.Equal(t, 1, db.calls)
		assert.True(t, errs.Is(err, errTransactionBegin))
		assert.False(t, errs.Is(err, shared.ErrTransient))
	})
}

func TestWithin_CallbackConflictRetriesWholeTransaction(t *testing.T) {
	db := &scriptedBeginner{tx: &stubTx{}}
	runs := 0

	err := newTestUoW(db).Within(context.Background(), func(context.Context, shared.Tx) error {
		runs++
		if runs == 1 {
			return &pgconn.PgError{Code: pgconv.CodeDeadlockDetected}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, db.calls)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Equal(t, 1, db.tx.commits)
}
