package request

import (
	"lunchmate/internal/domain/menuday"

	"github.com/google/uuid"
)

type DishRequest struct {
	Index  int        `json:"index" binding:"required,min=1,max=3"`
	MealID *uuid.UUID `json:"meal_id"`
	Name   string     `json:"name"`
	Notes  string     `json:"notes"`
}

type UpsertMenuDayRequest struct {
	Dishes   []DishRequest `json:"dishes"`
	Status   string        `json:"status" binding:"required,oneof=draft published closed"`
	TimeZone string        `json:"time_zone"`
}

func (r *UpsertMenuDayRequest) ToDomain() ([]menuday.Dish, menuday.Status, error) {
	status, err := menuday.NewStatus(r.Status)
	if err != nil {
		return nil, "", err
	}

	dishes := make([]menuday.Dish, len(r.Dishes))
	for i, d := range r.Dishes {
		dishes[i] = menuday.NewDish(d.Index, d.MealID, d.Name, d.Notes)
	}
	return dishes, status, nil
}
