package menuday

import (
	"time"

	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

// MenuDay is one cook's menu for one calendar day. Its logical identity is
// (cookID, day); the surrogate id exists only for storage.
type MenuDay struct {
	id            uuid.UUID
	cookID        uuid.UUID
	day           schedule.Day
	timeZone      string
	status        Status
	dishes        []Dish
	publishedAt   *time.Time
	closedAt      *time.Time
	confirmations int32
	createdAt     time.Time
	updatedAt     time.Time
}

// NewMenuDay creates the lazily-initialized Draft record for a day that has
// never been touched: three empty slots, no timestamps.
func NewMenuDay(cookID uuid.UUID, day schedule.Day, timeZone string) *MenuDay {
	return &MenuDay{
		cookID:   cookID,
		day:      day,
		timeZone: timeZone,
		status:   StatusDraft,
		dishes:   EmptyDishes(),
	}
}

func ReconstructMenuDay(
	id, cookID uuid.UUID,
	day schedule.Day,
	timeZone string,
	status Status,
	dishes []Dish,
	publishedAt, closedAt *time.Time,
	confirmations int32,
	createdAt, updatedAt time.Time,
) *MenuDay {
	return &MenuDay{
		id:            id,
		cookID:        cookID,
		day:           day,
		timeZone:      timeZone,
		status:        status,
		dishes:        NormalizeDishes(dishes),
		publishedAt:   publishedAt,
		closedAt:      closedAt,
		confirmations: confirmations,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ApplyUpsert replaces the day's dishes, status and time zone, keeping the
// lifecycle timestamps consistent:
//   - publishedAt is set on the first transition into Published and preserved
//     from then on
//   - closedAt is set on a transition into Closed and cleared whenever the
//     resulting status is not Closed
func (m *MenuDay) ApplyUpsert(dishes []Dish, status Status, timeZone string, now time.Time) {
	m.dishes = NormalizeDishes(dishes)
	m.timeZone = timeZone

	if status == StatusPublished && m.publishedAt == nil {
		t := now
		m.publishedAt = &t
	}

	switch {
	case status == StatusClosed && m.status != StatusClosed:
		t := now
		m.closedAt = &t
	case status != StatusClosed:
		m.closedAt = nil
	}

	m.status = status
	m.updatedAt = now
}

// ContainsMeal reports whether the meal is bound to one of the day's slots.
func (m *MenuDay) ContainsMeal(mealID uuid.UUID) bool {
	for _, d := range m.dishes {
		if d.MealID() != nil && *d.MealID() == mealID {
			return true
		}
	}
	return false
}

func (m *MenuDay) ID() uuid.UUID          { return m.id }
func (m *MenuDay) CookID() uuid.UUID      { return m.cookID }
func (m *MenuDay) Day() schedule.Day      { return m.day }
func (m *MenuDay) TimeZone() string       { return m.timeZone }
func (m *MenuDay) Status() Status         { return m.status }
func (m *MenuDay) PublishedAt() *time.Time { return m.publishedAt }
func (m *MenuDay) ClosedAt() *time.Time   { return m.closedAt }
func (m *MenuDay) Confirmations() int32   { return m.confirmations }
func (m *MenuDay) CreatedAt() time.Time   { return m.createdAt }
func (m *MenuDay) UpdatedAt() time.Time   { return m.updatedAt }

// Dishes returns a copy; callers cannot mutate the entity through it.
func (m *MenuDay) Dishes() []Dish {
	out := make([]Dish, len(m.dishes))
	copy(out, m.dishes)
	return out
}
