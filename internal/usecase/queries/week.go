package queries

import (
	"context"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/clock"
	"lunchmate/internal/pkg/errs"
	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

var ErrWeekProjectionFailed = errs.New("week projection failed")

type OrderReadStore interface {
	// FindWeekByCustomer returns the customer's orders with the cook in
	// [weekStart, weekStart+7), keyed by delivery date.
	FindWeekByCustomer(ctx context.Context, customerID, cookID uuid.UUID, weekStart schedule.Day) ([]*OrderView, error)
}

type MealReadStore interface {
	FindByID(ctx context.Context, mealID uuid.UUID) (*MealView, error)
	RatingFor(ctx context.Context, mealID uuid.UUID) (*RatingView, error)
}

type WeekQueries interface {
	ProjectWeek(ctx context.Context, customerID, cookID uuid.UUID, weekStart schedule.Day) ([]*DayProjectionView, error)
}

type weekQueriesImpl struct {
	menuStore  MenuDayReadStore
	orderStore OrderReadStore
	mealStore  MealReadStore
	clock      clock.Clock
}

func NewWeekQueries(
	menuStore MenuDayReadStore,
	orderStore OrderReadStore,
	mealStore MealReadStore,
	clock clock.Clock,
) WeekQueries {
	return &weekQueriesImpl{
		menuStore:  menuStore,
		orderStore: orderStore,
		mealStore:  mealStore,
		clock:      clock,
	}
}

// ProjectWeek joins seven days of the cook's menu with the customer's orders
// and the external meal/rating data into a display-ready projection. It is
// read-only; nothing it touches is ever mutated.
func (q *weekQueriesImpl) ProjectWeek(
	ctx context.Context,
	customerID, cookID uuid.UUID,
	weekStart schedule.Day,
) ([]*DayProjectionView, error) {
	menuDays, err := q.menuStore.FindWeek(ctx, cookID, weekStart)
	if err != nil {
		return nil, errs.Mark(err, ErrWeekProjectionFailed)
	}

	orders, err := q.orderStore.FindWeekByCustomer(ctx, customerID, cookID, weekStart)
	if err != nil {
		return nil, errs.Mark(err, ErrWeekProjectionFailed)
	}

	menuByDate := make(map[string]*MenuDayView, len(menuDays))
	for _, md := range menuDays {
		menuByDate[md.Date.Format("2006-01-02")] = md
	}
	orderByDate := make(map[string]*OrderView, len(orders))
	for _, o := range orders {
		orderByDate[o.DeliveryDate.Format("2006-01-02")] = o
	}

	now := q.clock.Now().UTC()

	week := make([]*DayProjectionView, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDays(i)
		key := day.String()

		projection := &DayProjectionView{
			Date:   day.UTCKey(),
			Dishes: []HydratedDishView{},
		}

		if md, ok := menuByDate[key]; ok {
			projection.Status = md.Status
			projection.TimeZone = md.TimeZone

			hydrated, hydrateErr := q.hydrateDishes(ctx, md.Dishes)
			if hydrateErr != nil {
				return nil, errs.Mark(hydrateErr, ErrWeekProjectionFailed)
			}
			projection.Dishes = hydrated
		}

		if o, ok := orderByDate[key]; ok {
			projection.Order = o
			projection.CanCancel = !now.After(o.CancelUntil)
		}

		week = append(week, projection)
	}

	return week, nil
}

// hydrateDishes joins dish slots with catalog details and rating aggregates.
// Empty slots are excluded, as are slots whose meal has vanished from the
// catalog since the menu was saved.
func (q *weekQueriesImpl) hydrateDishes(ctx context.Context, dishes []DishView) ([]HydratedDishView, error) {
	hydrated := make([]HydratedDishView, 0, len(dishes))
	for _, d := range dishes {
		if d.MealID == nil {
			continue
		}

		meal, err := q.mealStore.FindByID(ctx, *d.MealID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}

		rating, err := q.mealStore.RatingFor(ctx, *d.MealID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				rating = &RatingView{}
			} else {
				return nil, err
			}
		}

		hydrated = append(hydrated, HydratedDishView{
			Index:       d.Index,
			MealID:      meal.ID,
			Name:        meal.Name,
			PriceCents:  meal.PriceCents,
			Description: meal.Description,
			ImageURL:    meal.ImageURL,
			Rating:      *rating,
		})
	}
	return hydrated, nil
}
