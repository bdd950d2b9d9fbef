//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/usecase/queries"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newWorkshopQueries(t *testing.T) (queries.WorkshopQueries, *queriesmock.MockWorkshopViewRepo, *queriesmock.MockBookingActivityRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockWorkshopViewRepo(ctrl)
	bookings := queriesmock.NewMockBookingActivityRepo(ctrl)
	return queries.NewWorkshopQueries(repo, bookings, clock.NewMockClock(fixedNow)), repo, bookings
}

func TestWorkshopQueries_ListPublic_FiltersByClock(t *testing.T) {
	ctx := context.Background()
	q, repo, _ := newWorkshopQueries(t)

	repo.EXPECT().FindWorkshops(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f queries.WorkshopListFilter) ([]*queries.WorkshopView, error) {
			assert.False(t, f.IncludeDeleted)
			require.NotNil(t, f.UpcomingAfter)
			assert.Equal(t, fixedNow, *f.UpcomingAfter)
			return []*queries.WorkshopView{{ID: uuid.New()}}, nil
		})

	views, err := q.ListPublic(ctx)

	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestWorkshopQueries_ListAdmin_IncludesDeleted(t *testing.T) {
	ctx := context.Background()
	q, repo, _ := newWorkshopQueries(t)

	repo.EXPECT().FindWorkshops(ctx, queries.WorkshopListFilter{IncludeDeleted: true}).Return(nil, nil)

	_, err := q.ListAdmin(ctx)

	require.NoError(t, err)
}

func TestWorkshopQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("detail carries active bookings", func(t *testing.T) {
		q, repo, bookings := newWorkshopQueries(t)
		repo.EXPECT().FindByID(ctx, id).Return(&queries.WorkshopView{ID: id, Title: "Go"}, nil)
		bookings.EXPECT().FindActiveByWorkshop(ctx, id).Return([]*queries.BookingView{{ID: uuid.New()}}, nil)

		detail, err := q.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Go", detail.Title)
		assert.Len(t, detail.ActiveBookings, 1)
	})

	t.Run("missing workshop", func(t *testing.T) {
		q, repo, _ := newWorkshopQueries(t)
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("workshop not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)

		assert.ErrorIs(t, err, queries.ErrWorkshopNotFound)
	})
}

func TestWorkshopQueries_SlotAvailability_NotFound(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()
	q, repo, _ := newWorkshopQueries(t)
	repo.EXPECT().FindSlotAvailability(ctx, slotID).Return(nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound))

	_, err := q.SlotAvailability(ctx, slotID)

	assert.ErrorIs(t, err, queries.ErrSlotNotFound)
}
