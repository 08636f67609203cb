package response

import (
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingResponse struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

type HydratedDishResponse struct {
	Index       int            `json:"index"`
	MealID      uuid.UUID      `json:"mealId"`
	Name        string         `json:"name"`
	PriceCents  int32          `json:"priceCents"`
	Description *string        `json:"description,omitempty"`
	ImageURL    *string        `json:"imageUrl,omitempty"`
	Rating      RatingResponse `json:"rating"`
}

type DayProjectionResponse struct {
	Date      string                 `json:"date"`
	Status    string                 `json:"status,omitempty"`
	TimeZone  string                 `json:"timeZone,omitempty"`
	Dishes    []HydratedDishResponse `json:"dishes"`
	Order     *OrderResponse         `json:"order,omitempty"`
	CanCancel bool                   `json:"canCancel"`
}

func FromDayProjection(v *queries.DayProjectionView) *DayProjectionResponse {
	dishes := make([]HydratedDishResponse, len(v.Dishes))
	for i, d := range v.Dishes {
		dishes[i] = HydratedDishResponse{
			Index:       d.Index,
			MealID:      d.MealID,
			Name:        d.Name,
			PriceCents:  d.PriceCents,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Rating:      RatingResponse(d.Rating),
		}
	}

	resp := &DayProjectionResponse{
		Date:      v.Date.Format(dateFormat),
		Status:    v.Status,
		TimeZone:  v.TimeZone,
		Dishes:    dishes,
		CanCancel: v.CanCancel,
	}
	if v.Order != nil {
		resp.Order = FromOrderView(v.Order)
	}
	return resp
}
