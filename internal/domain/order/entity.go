package order

import (
	"errors"
	"time"

	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

var (
	ErrCutoffExpired     = errors.New("order cutoff expired")
	ErrOrderDelivered    = errors.New("order already delivered")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order is one customer's order with one cook for one delivery day. Its
// logical identity is (customerID, cookID, deliveryDay); there is at most one
// record per triple, updated in place until the cutoff passes.
type Order struct {
	id           uuid.UUID
	customerID   uuid.UUID
	cookID       uuid.UUID
	deliveryDay  schedule.Day
	mealID       uuid.UUID
	priceCents   int32
	status       Status
	cancelUntil  time.Time
	timeZone     string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrder creates a fresh Pending order with the price frozen at order time.
func NewOrder(
	customerID, cookID, mealID uuid.UUID,
	deliveryDay schedule.Day,
	timeZone string,
	priceCents int32,
	cancelUntil time.Time,
	now time.Time,
) *Order {
	return &Order{
		customerID:  customerID,
		cookID:      cookID,
		deliveryDay: deliveryDay,
		mealID:      mealID,
		priceCents:  priceCents,
		status:      StatusPending,
		cancelUntil: cancelUntil,
		timeZone:    timeZone,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructOrder(
	id, customerID, cookID, mealID uuid.UUID,
	deliveryDay schedule.Day,
	timeZone string,
	priceCents int32,
	status Status,
	cancelUntil time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		customerID:  customerID,
		cookID:      cookID,
		deliveryDay: deliveryDay,
		mealID:      mealID,
		priceCents:  priceCents,
		status:      status,
		cancelUntil: cancelUntil,
		timeZone:    timeZone,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// CanCancel reports whether the cutoff still allows customer mutation. Also
// used as a display hint, so it must stay a pure predicate.
func (o *Order) CanCancel(now time.Time) bool {
	return !now.UTC().After(o.cancelUntil)
}

// Reselect is the customer's pre-cutoff update: new meal, refreshed price and
// cutoff, status reset to Pending (a cancelled order is revived by ordering
// again). A delivered order can no longer be changed, cutoff or not.
func (o *Order) Reselect(mealID uuid.UUID, priceCents int32, timeZone string, cancelUntil, now time.Time) error {
	if !o.CanCancel(now) {
		return ErrCutoffExpired
	}
	if o.status == StatusDelivered {
		return ErrOrderDelivered
	}

	o.mealID = mealID
	o.priceCents = priceCents
	o.timeZone = timeZone
	o.cancelUntil = cancelUntil
	o.status = StatusPending
	o.updatedAt = now
	return nil
}

// Cancel flips the status; the record is kept for history.
func (o *Order) Cancel(now time.Time) error {
	if !o.CanCancel(now) {
		return ErrCutoffExpired
	}
	if !o.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}

	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// Advance is the cook-side progression (Pending→Ready→Delivered). It is
// deliberately not cutoff-gated: the kitchen keeps working after the cutoff.
func (o *Order) Advance(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}

	o.status = to
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) CustomerID() uuid.UUID     { return o.customerID }
func (o *Order) CookID() uuid.UUID         { return o.cookID }
func (o *Order) DeliveryDay() schedule.Day { return o.deliveryDay }
func (o *Order) MealID() uuid.UUID         { return o.mealID }
func (o *Order) PriceCents() int32         { return o.priceCents }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CancelUntil() time.Time    { return o.cancelUntil }
func (o *Order) TimeZone() string          { return o.timeZone }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
