package request

import (
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	CookID   uuid.UUID `json:"cook_id" binding:"required"`
	MealID   uuid.UUID `json:"meal_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	TimeZone string    `json:"time_zone"`
}

type CancelOrderRequest struct {
	CookID uuid.UUID `json:"cook_id" binding:"required"`
	Date   string    `json:"date" binding:"required"`
}

type AdvanceOrderRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Status     string    `json:"status" binding:"required,oneof=ready delivered cancelled"`
}
