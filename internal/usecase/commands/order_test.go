//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/domain/order"
	"lunchmate/internal/pkg/clock"
	"lunchmate/internal/usecase/commands"
	commandsmock "lunchmate/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderTestDeps struct {
	orderRepo *commandsmock.MockOrderRepository
	menuRepo  *commandsmock.MockMenuDayRepository
	catalog   *commandsmock.MockMealCatalog
	clock     *clock.MockClock
}

func newOrderTestDeps(t *testing.T) (commands.OrderCommands, *orderTestDeps) {
	ctrl := gomock.NewController(t)
	deps := &orderTestDeps{
		orderRepo: commandsmock.NewMockOrderRepository(ctrl),
		menuRepo:  commandsmock.NewMockMenuDayRepository(ctrl),
		catalog:   commandsmock.NewMockMealCatalog(ctrl),
		clock:     clock.NewMockClock(testNow),
	}
	uc := commands.NewOrderCommands(deps.orderRepo, deps.menuRepo, deps.catalog, deps.clock)
	return uc, deps
}

func publishedMenu(cookID, mealID uuid.UUID) *menuday.MenuDay {
	m := menuday.NewMenuDay(cookID, testDay, "UTC")
	m.ApplyUpsert([]menuday.Dish{
		menuday.NewDish(1, &mealID, "Casado", ""),
	}, menuday.StatusPublished, "UTC", testNow)
	return m
}

func TestPlaceOrder(t *testing.T) {
	customerID := uuid.New()
	cookID := uuid.New()
	mealID := uuid.New()
	meal := &commands.MealSnapshot{ID: mealID, Name: "Casado", PriceCents: 4500}

	t.Run("creates a pending order with the computed cutoff", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, mealID), nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(meal, nil)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(nil, notFoundErr())
		deps.orderRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) (*order.Order, error) {
				return o, nil
			})

		placed, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, placed.Status())
		assert.Equal(t, int32(4500), placed.PriceCents())
		assert.Equal(t, time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC), placed.CancelUntil())
	})

	t.Run("rejects creation after the cutoff", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.clock.Set(time.Date(2025, time.June, 10, 8, 0, 1, 0, time.UTC))
		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, mealID), nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(meal, nil)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(nil, notFoundErr())

		_, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		assert.ErrorIs(t, err, commands.ErrCutoffExpired)
	})

	t.Run("reselects an existing order in place", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		otherMeal := uuid.New()
		menu := menuday.NewMenuDay(cookID, testDay, "UTC")
		menu.ApplyUpsert([]menuday.Dish{
			menuday.NewDish(1, &mealID, "Casado", ""),
			menuday.NewDish(2, &otherMeal, "Gallo Pinto", ""),
		}, menuday.StatusPublished, "UTC", testNow)

		existing := order.NewOrder(customerID, cookID, otherMeal, testDay, "UTC", 3000,
			time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC), testNow)

		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(menu, nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(meal, nil)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)
		deps.orderRepo.EXPECT().Update(gomock.Any(), existing).Return(existing, nil)

		placed, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		require.NoError(t, err)
		assert.Equal(t, mealID, placed.MealID())
		assert.Equal(t, int32(4500), placed.PriceCents())
	})

	t.Run("revives a cancelled order", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		existing := order.NewOrder(customerID, cookID, mealID, testDay, "UTC", 4500,
			time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC), testNow)
		require.NoError(t, existing.Cancel(testNow))

		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, mealID), nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(meal, nil)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)
		deps.orderRepo.EXPECT().Update(gomock.Any(), existing).Return(existing, nil)

		placed, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, placed.Status())
	})

	t.Run("meal not on the menu", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, uuid.New()), nil)

		_, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		assert.ErrorIs(t, err, commands.ErrMealNotOnMenu)
	})

	t.Run("no menu for the day", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(nil, notFoundErr())

		_, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		assert.ErrorIs(t, err, commands.ErrMenuDayNotFound)
	})

	t.Run("meal vanished from the catalog", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, mealID), nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(nil, notFoundErr())

		_, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		assert.ErrorIs(t, err, commands.ErrMealNotFound)
	})

	t.Run("lost insert race reselects against the winner", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		winner := order.NewOrder(customerID, cookID, mealID, testDay, "UTC", 4500,
			time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC), testNow)

		deps.menuRepo.EXPECT().FindByCookAndDay(gomock.Any(), cookID, testDay).Return(publishedMenu(cookID, mealID), nil)
		deps.catalog.EXPECT().GetMeal(gomock.Any(), mealID).Return(meal, nil)
		gomock.InOrder(
			deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(nil, notFoundErr()),
			deps.orderRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, duplicateErr()),
			deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(winner, nil),
			deps.orderRepo.EXPECT().Update(gomock.Any(), winner).Return(winner, nil),
		)

		placed, err := uc.PlaceOrder(context.Background(), customerID, cookID, mealID, testDay, "UTC")

		require.NoError(t, err)
		assert.Same(t, winner, placed)
	})
}

func TestCancelOrder(t *testing.T) {
	customerID := uuid.New()
	cookID := uuid.New()
	cutoff := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)

	t.Run("cancels before the cutoff", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		existing := order.NewOrder(customerID, cookID, uuid.New(), testDay, "UTC", 4500, cutoff, testNow)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)
		deps.orderRepo.EXPECT().Update(gomock.Any(), existing).Return(existing, nil)

		err := uc.CancelOrder(context.Background(), customerID, cookID, testDay)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, existing.Status())
	})

	t.Run("rejected after the cutoff", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.clock.Set(cutoff.Add(time.Second))
		existing := order.NewOrder(customerID, cookID, uuid.New(), testDay, "UTC", 4500, cutoff, testNow)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)

		err := uc.CancelOrder(context.Background(), customerID, cookID, testDay)

		assert.ErrorIs(t, err, commands.ErrCutoffExpired)
	})

	t.Run("missing order", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(nil, notFoundErr())

		err := uc.CancelOrder(context.Background(), customerID, cookID, testDay)

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

func TestAdvanceOrder(t *testing.T) {
	customerID := uuid.New()
	cookID := uuid.New()
	cutoff := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)

	t.Run("advances after the cutoff", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		deps.clock.Set(cutoff.Add(2 * time.Hour))
		existing := order.NewOrder(customerID, cookID, uuid.New(), testDay, "UTC", 4500, cutoff, testNow)
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)
		deps.orderRepo.EXPECT().Update(gomock.Any(), existing).Return(existing, nil)

		advanced, err := uc.AdvanceOrder(context.Background(), cookID, customerID, testDay, order.StatusReady)

		require.NoError(t, err)
		assert.Equal(t, order.StatusReady, advanced.Status())
	})

	t.Run("invalid transition", func(t *testing.T) {
		uc, deps := newOrderTestDeps(t)
		existing := order.NewOrder(customerID, cookID, uuid.New(), testDay, "UTC", 4500, cutoff, testNow)
		require.NoError(t, existing.Advance(order.StatusDelivered, testNow))
		deps.orderRepo.EXPECT().FindByKey(gomock.Any(), customerID, cookID, testDay).Return(existing, nil)

		_, err := uc.AdvanceOrder(context.Background(), cookID, customerID, testDay, order.StatusReady)

		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
