package response

import (
	"time"

	"lunchmate/internal/domain/order"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	CookID       uuid.UUID `json:"cookId"`
	MealID       uuid.UUID `json:"mealId"`
	DeliveryDate string    `json:"deliveryDate"`
	PriceCents   int32     `json:"priceCents"`
	Status       string    `json:"status"`
	CancelUntil  time.Time `json:"cancelUntil"`
	TimeZone     string    `json:"timeZone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		CookID:       o.CookID(),
		MealID:       o.MealID(),
		DeliveryDate: o.DeliveryDay().String(),
		PriceCents:   o.PriceCents(),
		Status:       string(o.Status()),
		CancelUntil:  o.CancelUntil(),
		TimeZone:     o.TimeZone(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CookID:       v.CookID,
		MealID:       v.MealID,
		DeliveryDate: v.DeliveryDate.Format(dateFormat),
		PriceCents:   v.PriceCents,
		Status:       v.Status,
		CancelUntil:  v.CancelUntil,
		TimeZone:     v.TimeZone,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
