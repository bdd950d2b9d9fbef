//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/infra/readstore"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"
	readstoremock "workshop-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	scheduled := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        query.BookingViewRow
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: joined columns are mapped",
			row: query.BookingViewRow{
				ID:            id,
				WorkshopTitle: "Intro to Go",
				ScheduledAt:   pgconv.TimeToPgtype(scheduled),
				StartLabel:    "9:00 AM",
				EndLabel:      "10:00 AM",
				Status:        "PENDING",
			},
		},
		{name: "error: not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetBookingView(ctx, mockDB, id).Return(tc.row, tc.err)

			view, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			want := &queries.BookingView{
				ID:            id,
				WorkshopTitle: "Intro to Go",
				ScheduledAt:   scheduled,
				StartTime:     "9:00 AM",
				EndTime:       "10:00 AM",
				Status:        "PENDING",
			}
			if diff := cmp.Diff(want, view, cmpopts.IgnoreFields(queries.BookingView{}, "CreatedAt", "UpdatedAt")); diff != "" {
				t.Errorf("FindByID() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookingReadStore_FindPage(t *testing.T) {
	ctx := context.Background()
	statuses := []string{"PENDING", "CONFIRMED"}

	t.Run("success: rows and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingViews(ctx, mockDB, query.ListBookingViewsParams{
			Statuses: statuses,
			Limit:    10,
			Offset:   20,
		}).Return([]query.BookingViewRow{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
		mockQueries.EXPECT().CountBookingsByStatus(ctx, mockDB, statuses).Return(int64(22), nil)

		items, total, err := store.FindPage(ctx, statuses, 10, 20)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(22), total)
	})

	t.Run("error: count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingViews(ctx, mockDB, gomock.Any()).Return(nil, nil)
		mockQueries.EXPECT().CountBookingsByStatus(ctx, mockDB, statuses).Return(int64(0), errors.New("boom"))

		_, _, err := store.FindPage(ctx, statuses, 10, 0)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
