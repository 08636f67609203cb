package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type DishView struct {
	Index  int        `json:"index"`
	MealID *uuid.UUID `json:"meal_id,omitempty"`
	Name   string     `json:"name"`
	Notes  string     `json:"notes,omitempty"`
}

type MenuDayView struct {
	ID            uuid.UUID  `json:"id"`
	CookID        uuid.UUID  `json:"cook_id"`
	Date          time.Time  `json:"date"`
	TimeZone      string     `json:"time_zone"`
	Status        string     `json:"status"`
	Dishes        []DishView `json:"dishes"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	Confirmations int32      `json:"confirmations"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type OrderView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CookID       uuid.UUID `json:"cook_id"`
	MealID       uuid.UUID `json:"meal_id"`
	DeliveryDate time.Time `json:"delivery_date"`
	PriceCents   int32     `json:"price_cents"`
	Status       string    `json:"status"`
	CancelUntil  time.Time `json:"cancel_until"`
	TimeZone     string    `json:"time_zone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MealView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int32     `json:"price_cents"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// RatingView defaults to (0, 0) for meals nobody has reviewed.
type RatingView struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

// HydratedDishView is a dish slot joined with catalog and rating data. Only
// slots with a meal bound to them are hydrated.
type HydratedDishView struct {
	Index       int        `json:"index"`
	MealID      uuid.UUID  `json:"meal_id"`
	Name        string     `json:"name"`
	PriceCents  int32      `json:"price_cents"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Rating      RatingView `json:"rating"`
}

// DayProjectionView is one day of the customer-facing week: the cook's menu
// (if any), the customer's own order (if any), and a cancel hint for the UI.
type DayProjectionView struct {
	Date      time.Time          `json:"date"`
	Status    string             `json:"status,omitempty"`
	TimeZone  string             `json:"time_zone,omitempty"`
	Dishes    []HydratedDishView `json:"dishes"`
	Order     *OrderView         `json:"order,omitempty"`
	CanCancel bool               `json:"can_cancel"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
