//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/infra/repository"
	"workshop-booking/internal/pkg/pgconv"
	repositorymock "workshop-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// LockSlot Tests
// =============================================================================

func TestSlotRepository_LockSlot(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()
	workshopID := uuid.New()
	deletedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	testCases := []struct {
		name       string
		row        query.LockSlotRow
		err        error
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, got query.LockSlotRow)
	}{
		{
			name: "success: snapshot carries capacity and deletion markers",
			row: query.LockSlotRow{
				ID:                slotID,
				WorkshopID:        workshopID,
				RemainingSeats:    3,
				Capacity:          5,
				WorkshopDeletedAt: pgtype.Timestamptz{Time: deletedAt, Valid: true},
			},
		},
		{
			name:       "error: slot not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			err:        errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			mockQueries.EXPECT().LockSlot(ctx, mockDB, slotID).Return(tc.row, tc.err)

			snap, err := repo.LockSlot(ctx, slotID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, workshopID, snap.WorkshopID)
			assert.Equal(t, 3, snap.RemainingSeats)
			assert.Equal(t, 5, snap.Capacity)
			assert.Nil(t, snap.SlotDeletedAt)
			require.NotNil(t, snap.WorkshopDeletedAt)
			assert.False(t, snap.IsBookable())
		})
	}
}

// =============================================================================
// TryDecrement / Increment Tests
// =============================================================================

func TestSlotRepository_TryDecrement(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	testCases := []struct {
		name     string
		affected int64
		err      error
		wantOK   bool
		wantErr  bool
	}{
		{name: "success: one seat taken", affected: 1, wantOK: true},
		{name: "full: no row matched the guard", affected: 0, wantOK: false},
		{name: "error: database error", err: errDBConnectionLost, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DecrementSlotSeat(ctx, mockDB, slotID).Return(tc.affected, tc.err)

			ok, err := repo.TryDecrement(ctx, slotID)

			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSlotRepository_Increment(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: slot missing", affected: 0, expectKind: infra.KindNotFound},
		{
			name:       "error: lock timeout stays classified as db failure",
			err:        &pgconn.PgError{Code: pgconv.CodeLockNotAvailable},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			mockQueries.EXPECT().IncrementSlotSeat(ctx, mockDB, slotID).Return(tc.affected, tc.err)

			err := repo.Increment(ctx, slotID)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}
