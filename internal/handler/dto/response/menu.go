package response

import (
	"time"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateFormat = "2006-01-02"

type DishResponse struct {
	Index  int        `json:"index"`
	MealID *uuid.UUID `json:"mealId,omitempty"`
	Name   string     `json:"name,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

type MenuDayResponse struct {
	ID            uuid.UUID      `json:"id"`
	CookID        uuid.UUID      `json:"cookId"`
	Date          string         `json:"date"`
	TimeZone      string         `json:"timeZone"`
	Status        string         `json:"status"`
	Dishes        []DishResponse `json:"dishes"`
	PublishedAt   *time.Time     `json:"publishedAt,omitempty"`
	ClosedAt      *time.Time     `json:"closedAt,omitempty"`
	Confirmations int32          `json:"confirmations"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func FromMenuDay(m *menuday.MenuDay) *MenuDayResponse {
	dishes := m.Dishes()
	dishResponses := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		dishResponses[i] = DishResponse{
			Index:  d.Index(),
			MealID: d.MealID(),
			Name:   d.Name(),
			Notes:  d.Notes(),
		}
	}

	return &MenuDayResponse{
		ID:            m.ID(),
		CookID:        m.CookID(),
		Date:          m.Day().String(),
		TimeZone:      m.TimeZone(),
		Status:        string(m.Status()),
		Dishes:        dishResponses,
		PublishedAt:   m.PublishedAt(),
		ClosedAt:      m.ClosedAt(),
		Confirmations: m.Confirmations(),
		CreatedAt:     m.CreatedAt(),
		UpdatedAt:     m.UpdatedAt(),
	}
}

func FromMenuDayView(v *queries.MenuDayView) *MenuDayResponse {
	dishResponses := make([]DishResponse, len(v.Dishes))
	for i, d := range v.Dishes {
		dishResponses[i] = DishResponse{
			Index:  d.Index,
			MealID: d.MealID,
			Name:   d.Name,
			Notes:  d.Notes,
		}
	}

	return &MenuDayResponse{
		ID:            v.ID,
		CookID:        v.CookID,
		Date:          v.Date.Format(dateFormat),
		TimeZone:      v.TimeZone,
		Status:        v.Status,
		Dishes:        dishResponses,
		PublishedAt:   v.PublishedAt,
		ClosedAt:      v.ClosedAt,
		Confirmations: v.Confirmations,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
