//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/clock"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/queries"
	queriesmock "lunchmate/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	weekStart = schedule.NewDay(2025, time.June, 9)
	projNow   = time.Date(2025, time.June, 9, 7, 0, 0, 0, time.UTC)
)

type weekTestDeps struct {
	menuStore  *queriesmock.MockMenuDayReadStore
	orderStore *queriesmock.MockOrderReadStore
	mealStore  *queriesmock.MockMealReadStore
	clock      *clock.MockClock
}

func newWeekTestDeps(t *testing.T) (queries.WeekQueries, *weekTestDeps) {
	ctrl := gomock.NewController(t)
	deps := &weekTestDeps{
		menuStore:  queriesmock.NewMockMenuDayReadStore(ctrl),
		orderStore: queriesmock.NewMockOrderReadStore(ctrl),
		mealStore:  queriesmock.NewMockMealReadStore(ctrl),
		clock:      clock.NewMockClock(projNow),
	}
	q := queries.NewWeekQueries(deps.menuStore, deps.orderStore, deps.mealStore, deps.clock)
	return q, deps
}

func TestProjectWeek(t *testing.T) {
	customerID := uuid.New()
	cookID := uuid.New()
	mealID := uuid.New()

	menuDay := &queries.MenuDayView{
		ID:       uuid.New(),
		CookID:   cookID,
		Date:     weekStart.UTCKey(),
		TimeZone: "UTC",
		Status:   "published",
		Dishes: []queries.DishView{
			{Index: 1, MealID: &mealID, Name: "Casado"},
			{Index: 2},
			{Index: 3},
		},
	}

	orderView := &queries.OrderView{
		ID:           uuid.New(),
		CustomerID:   customerID,
		CookID:       cookID,
		MealID:       mealID,
		DeliveryDate: weekStart.UTCKey(),
		PriceCents:   4500,
		Status:       "pending",
		CancelUntil:  time.Date(2025, time.June, 9, 8, 0, 0, 0, time.UTC),
	}

	mealView := &queries.MealView{ID: mealID, Name: "Casado", PriceCents: 4500}
	ratingView := &queries.RatingView{Average: 4.5, Count: 12}

	t.Run("joins menu, order and catalog into seven days", func(t *testing.T) {
		q, deps := newWeekTestDeps(t)
		deps.menuStore.EXPECT().FindWeek(gomock.Any(), cookID, weekStart).Return([]*queries.MenuDayView{menuDay}, nil)
		deps.orderStore.EXPECT().FindWeekByCustomer(gomock.Any(), customerID, cookID, weekStart).Return([]*queries.OrderView{orderView}, nil)
		deps.mealStore.EXPECT().FindByID(gomock.Any(), mealID).Return(mealView, nil)
		deps.mealStore.EXPECT().RatingFor(gomock.Any(), mealID).Return(ratingView, nil)

		week, err := q.ProjectWeek(context.Background(), customerID, cookID, weekStart)

		require.NoError(t, err)
		require.Len(t, week, 7)

		expectedFirst := &queries.DayProjectionView{
			Date:     weekStart.UTCKey(),
			Status:   "published",
			TimeZone: "UTC",
			Dishes: []queries.HydratedDishView{
				{
					Index:      1,
					MealID:     mealID,
					Name:       "Casado",
					PriceCents: 4500,
					Rating:     *ratingView,
				},
			},
			Order:     orderView,
			CanCancel: true,
		}
		if diff := cmp.Diff(expectedFirst, week[0]); diff != "" {
			t.Errorf("first day mismatch (-want +got):\n%s", diff)
		}

		for i := 1; i < 7; i++ {
			assert.Equal(t, weekStart.AddDays(i).UTCKey(), week[i].Date)
			assert.Empty(t, week[i].Status)
			assert.Empty(t, week[i].Dishes)
			assert.Nil(t, week[i].Order)
			assert.False(t, week[i].CanCancel)
		}
	})

	t.Run("cancel hint flips after the cutoff", func(t *testing.T) {
		q, deps := newWeekTestDeps(t)
		deps.clock.Set(orderView.CancelUntil.Add(time.Minute))
		deps.menuStore.EXPECT().FindWeek(gomock.Any(), cookID, weekStart).Return(nil, nil)
		deps.orderStore.EXPECT().FindWeekByCustomer(gomock.Any(), customerID, cookID, weekStart).Return([]*queries.OrderView{orderView}, nil)

		week, err := q.ProjectWeek(context.Background(), customerID, cookID, weekStart)

		require.NoError(t, err)
		assert.NotNil(t, week[0].Order)
		assert.False(t, week[0].CanCancel)
	})

	t.Run("vanished meals are skipped, missing ratings default to zero", func(t *testing.T) {
		q, deps := newWeekTestDeps(t)
		goneMeal := uuid.New()
		md := &queries.MenuDayView{
			CookID: cookID,
			Date:   weekStart.UTCKey(),
			Status: "published",
			Dishes: []queries.DishView{
				{Index: 1, MealID: &goneMeal},
				{Index: 2, MealID: &mealID},
			},
		}
		deps.menuStore.EXPECT().FindWeek(gomock.Any(), cookID, weekStart).Return([]*queries.MenuDayView{md}, nil)
		deps.orderStore.EXPECT().FindWeekByCustomer(gomock.Any(), customerID, cookID, weekStart).Return(nil, nil)
		deps.mealStore.EXPECT().FindByID(gomock.Any(), goneMeal).
			Return(nil, infra.WrapRepoErr("meal not found", assert.AnError, infra.KindNotFound))
		deps.mealStore.EXPECT().FindByID(gomock.Any(), mealID).Return(mealView, nil)
		deps.mealStore.EXPECT().RatingFor(gomock.Any(), mealID).
			Return(nil, infra.WrapRepoErr("no reviews", assert.AnError, infra.KindNotFound))

		week, err := q.ProjectWeek(context.Background(), customerID, cookID, weekStart)

		require.NoError(t, err)
		require.Len(t, week[0].Dishes, 1)
		assert.Equal(t, mealID, week[0].Dishes[0].MealID)
		assert.Equal(t, queries.RatingView{}, week[0].Dishes[0].Rating)
	})

	t.Run("store failure marks the projection error", func(t *testing.T) {
		q, deps := newWeekTestDeps(t)
		deps.menuStore.EXPECT().FindWeek(gomock.Any(), cookID, weekStart).
			Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		_, err := q.ProjectWeek(context.Background(), customerID, cookID, weekStart)

		assert.ErrorIs(t, err, queries.ErrWeekProjectionFailed)
	})
}
