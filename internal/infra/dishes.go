package infra

import (
	"encoding/json"

	"lunchmate/internal/domain/menuday"

	"github.com/google/uuid"
)

// DishRecord is the jsonb shape of one dish slot in menu_days.dishes.
type DishRecord struct {
	Index  int        `json:"index"`
	MealID *uuid.UUID `json:"meal_id,omitempty"`
	Name   string     `json:"name"`
	Notes  string     `json:"notes,omitempty"`
}

func EncodeDishes(dishes []menuday.Dish) ([]byte, error) {
	records := make([]DishRecord, len(dishes))
	for i, d := range dishes {
		records[i] = DishRecord{
			Index:  d.Index(),
			MealID: d.MealID(),
			Name:   d.Name(),
			Notes:  d.Notes(),
		}
	}
	return json.Marshal(records)
}

func DecodeDishes(data []byte) ([]menuday.Dish, error) {
	var records []DishRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	dishes := make([]menuday.Dish, len(records))
	for i, r := range records {
		dishes[i] = menuday.NewDish(r.Index, r.MealID, r.Name, r.Notes)
	}
	return dishes, nil
}
