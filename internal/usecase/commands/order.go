package commands

import (
	"context"
	"errors"
	"time"

	"lunchmate/internal/domain/order"
	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/clock"
	"lunchmate/internal/pkg/errs"
	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

var (
	ErrMenuDayNotFound   = errs.New("no menu for day")
	ErrMealNotOnMenu     = errs.New("meal is not on the day's menu")
	ErrMealNotFound      = errs.New("meal not found")
	ErrOrderNotFound     = errs.New("order not found")
	ErrCutoffExpired     = errs.New("order cutoff expired")
	ErrOrderDelivered    = errs.New("order already delivered")
	ErrInvalidTransition = errs.New("invalid order status transition")
)

// MealSnapshot is the slice of the external catalog the order path needs; the
// price is captured here and frozen on the order.
type MealSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int32
}

type MealCatalog interface {
	GetMeal(ctx context.Context, mealID uuid.UUID) (*MealSnapshot, error)
}

type OrderRepository interface {
	FindByKey(ctx context.Context, customerID, cookID uuid.UUID, day schedule.Day) (*order.Order, error)
	Insert(ctx context.Context, o *order.Order) (*order.Order, error)
	Update(ctx context.Context, o *order.Order) (*order.Order, error)
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, customerID, cookID, mealID uuid.UUID, day schedule.Day, timeZone string) (*order.Order, error)
	CancelOrder(ctx context.Context, customerID, cookID uuid.UUID, day schedule.Day) error
	AdvanceOrder(ctx context.Context, cookID, customerID uuid.UUID, day schedule.Day, to order.Status) (*order.Order, error)
}

type orderCommandsImpl struct {
	orderRepo OrderRepository
	menuRepo  MenuDayRepository
	catalog   MealCatalog
	clock     clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	menuRepo MenuDayRepository,
	catalog MealCatalog,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		catalog:   catalog,
		clock:     clock,
	}
}

// PlaceOrder creates the customer's order for (cook, day), or updates it in
// place when one already exists. Both paths are cutoff-gated: creation against
// the day's computed cutoff, update against the cutoff stored on the record.
func (c *orderCommandsImpl) PlaceOrder(
	ctx context.Context,
	customerID, cookID, mealID uuid.UUID,
	day schedule.Day,
	timeZone string,
) (*order.Order, error) {
	menu, err := c.menuRepo.FindByCookAndDay(ctx, cookID, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuDayNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !menu.ContainsMeal(mealID) {
		return nil, ErrMealNotOnMenu
	}

	meal, err := c.catalog.GetMeal(ctx, mealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cancelUntil := schedule.CancelUntil(day, timeZone)
	now := c.clock.Now().UTC()

	existing, err := c.orderRepo.FindByKey(ctx, customerID, cookID, day)
	switch {
	case err == nil:
		return c.reselect(ctx, existing, meal, timeZone, cancelUntil)

	case infra.IsKind(err, infra.KindNotFound):
		if now.After(cancelUntil) {
			return nil, ErrCutoffExpired
		}
		fresh := order.NewOrder(customerID, cookID, mealID, day, timeZone, meal.PriceCents, cancelUntil, now)
		created, insertErr := c.orderRepo.Insert(ctx, fresh)
		if insertErr == nil {
			return created, nil
		}
		// Lost the insert race against a concurrent first order for the same
		// key; fall back to updating the existing record.
		if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
			return nil, errs.Mark(insertErr, ErrDatabaseOperationFailed)
		}
		winner, refetchErr := c.orderRepo.FindByKey(ctx, customerID, cookID, day)
		if refetchErr != nil {
			return nil, errs.Mark(refetchErr, ErrDatabaseOperationFailed)
		}
		return c.reselect(ctx, winner, meal, timeZone, cancelUntil)

	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (c *orderCommandsImpl) reselect(
	ctx context.Context,
	existing *order.Order,
	meal *MealSnapshot,
	timeZone string,
	cancelUntil time.Time,
) (*order.Order, error) {
	now := c.clock.Now().UTC()
	if err := existing.Reselect(meal.ID, meal.PriceCents, timeZone, cancelUntil, now); err != nil {
		return nil, mapOrderDomainErr(err)
	}

	updated, err := c.orderRepo.Update(ctx, existing)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

// CancelOrder flips the order to Cancelled before the cutoff; the record is
// kept for history.
func (c *orderCommandsImpl) CancelOrder(ctx context.Context, customerID, cookID uuid.UUID, day schedule.Day) error {
	existing, err := c.orderRepo.FindByKey(ctx, customerID, cookID, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := existing.Cancel(c.clock.Now().UTC()); err != nil {
		return mapOrderDomainErr(err)
	}

	if _, err := c.orderRepo.Update(ctx, existing); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// AdvanceOrder is the cook-side progression through Ready and Delivered. It
// carries no cutoff restriction.
func (c *orderCommandsImpl) AdvanceOrder(
	ctx context.Context,
	cookID, customerID uuid.UUID,
	day schedule.Day,
	to order.Status,
) (*order.Order, error) {
	existing, err := c.orderRepo.FindByKey(ctx, customerID, cookID, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := existing.Advance(to, c.clock.Now().UTC()); err != nil {
		return nil, mapOrderDomainErr(err)
	}

	updated, err := c.orderRepo.Update(ctx, existing)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func mapOrderDomainErr(err error) error {
	switch {
	case errors.Is(err, order.ErrCutoffExpired):
		return ErrCutoffExpired
	case errors.Is(err, order.ErrOrderDelivered):
		return ErrOrderDelivered
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrInvalidStatus):
		return ErrInvalidTransition
	default:
		return err
	}
}
