//go:build unit

package menuday_test

import (
	"testing"
	"time"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuDay(t *testing.T) {
	cookID := uuid.New()
	day := schedule.NewDay(2025, time.June, 10)

	m := menuday.NewMenuDay(cookID, day, "America/Costa_Rica")

	assert.Equal(t, cookID, m.CookID())
	assert.Equal(t, day, m.Day())
	assert.Equal(t, menuday.StatusDraft, m.Status())
	assert.Nil(t, m.PublishedAt())
	assert.Nil(t, m.ClosedAt())

	dishes := m.Dishes()
	require.Len(t, dishes, menuday.SlotCount)
	for i, d := range dishes {
		assert.Equal(t, i+1, d.Index())
		assert.True(t, d.IsEmpty())
	}
}

func TestApplyUpsert(t *testing.T) {
	cookID := uuid.New()
	day := schedule.NewDay(2025, time.June, 10)
	now := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	t.Run("publishing sets publishedAt once", func(t *testing.T) {
		m := menuday.NewMenuDay(cookID, day, "UTC")

		m.ApplyUpsert(nil, menuday.StatusPublished, "UTC", now)
		require.NotNil(t, m.PublishedAt())
		first := *m.PublishedAt()
		assert.Equal(t, now, first)

		later := now.Add(2 * time.Hour)
		m.ApplyUpsert(nil, menuday.StatusPublished, "UTC", later)
		require.NotNil(t, m.PublishedAt())
		assert.Equal(t, first, *m.PublishedAt(), "publishedAt must survive later saves")
	})

	t.Run("closing sets closedAt and reopening clears it", func(t *testing.T) {
		m := menuday.NewMenuDay(cookID, day, "UTC")

		m.ApplyUpsert(nil, menuday.StatusClosed, "UTC", now)
		assert.Equal(t, menuday.StatusClosed, m.Status())
		require.NotNil(t, m.ClosedAt())
		assert.Equal(t, now, *m.ClosedAt())

		later := now.Add(time.Hour)
		m.ApplyUpsert(nil, menuday.StatusPublished, "UTC", later)
		assert.Equal(t, menuday.StatusPublished, m.Status())
		assert.Nil(t, m.ClosedAt(), "closedAt must be recomputed when the day leaves Closed")
	})

	t.Run("dishes are normalized on every save", func(t *testing.T) {
		m := menuday.NewMenuDay(cookID, day, "UTC")
		mealID := uuid.New()

		m.ApplyUpsert([]menuday.Dish{
			menuday.NewDish(2, &mealID, "Casado", ""),
		}, menuday.StatusDraft, "UTC", now)

		dishes := m.Dishes()
		require.Len(t, dishes, menuday.SlotCount)
		assert.True(t, dishes[0].IsEmpty())
		assert.Equal(t, "Casado", dishes[1].Name())
		assert.True(t, dishes[2].IsEmpty())
	})

	t.Run("time zone follows the save", func(t *testing.T) {
		m := menuday.NewMenuDay(cookID, day, "UTC")
		m.ApplyUpsert(nil, menuday.StatusDraft, "America/New_York", now)
		assert.Equal(t, "America/New_York", m.TimeZone())
	})
}

func TestContainsMeal(t *testing.T) {
	cookID := uuid.New()
	day := schedule.NewDay(2025, time.June, 10)
	now := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)
	onMenu := uuid.New()
	offMenu := uuid.New()

	m := menuday.NewMenuDay(cookID, day, "UTC")
	m.ApplyUpsert([]menuday.Dish{
		menuday.NewDish(1, &onMenu, "Gallo Pinto", ""),
	}, menuday.StatusPublished, "UTC", now)

	assert.True(t, m.ContainsMeal(onMenu))
	assert.False(t, m.ContainsMeal(offMenu))
}

func TestDishesReturnsCopy(t *testing.T) {
	m := menuday.NewMenuDay(uuid.New(), schedule.NewDay(2025, time.June, 10), "UTC")
	mealID := uuid.New()

	dishes := m.Dishes()
	dishes[0] = menuday.NewDish(1, &mealID, "mutated", "")

	assert.True(t, m.Dishes()[0].IsEmpty())
}
