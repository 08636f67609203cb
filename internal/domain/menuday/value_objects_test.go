//go:build unit

package menuday_test

import (
	"testing"

	"lunchmate/internal/domain/menuday"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDishes(t *testing.T) {
	mealA := uuid.New()
	mealB := uuid.New()

	testCases := []struct {
		name  string
		input []menuday.Dish
		check func(t *testing.T, result []menuday.Dish)
	}{
		{
			name:  "nil input yields three empty slots",
			input: nil,
			check: func(t *testing.T, result []menuday.Dish) {
				for i, d := range result {
					assert.Equal(t, i+1, d.Index())
					assert.True(t, d.IsEmpty())
				}
			},
		},
		{
			name: "missing indices are synthesized",
			input: []menuday.Dish{
				menuday.NewDish(3, &mealA, "Olla de Carne", ""),
			},
			check: func(t *testing.T, result []menuday.Dish) {
				assert.True(t, result[0].IsEmpty())
				assert.True(t, result[1].IsEmpty())
				assert.Equal(t, "Olla de Carne", result[2].Name())
			},
		},
		{
			name: "first dish per index wins",
			input: []menuday.Dish{
				menuday.NewDish(1, &mealA, "first", ""),
				menuday.NewDish(1, &mealB, "second", ""),
			},
			check: func(t *testing.T, result []menuday.Dish) {
				assert.Equal(t, "first", result[0].Name())
			},
		},
		{
			name: "out of range indices are discarded",
			input: []menuday.Dish{
				menuday.NewDish(0, &mealA, "zero", ""),
				menuday.NewDish(4, &mealB, "four", ""),
				menuday.NewDish(-1, &mealA, "negative", ""),
			},
			check: func(t *testing.T, result []menuday.Dish) {
				for _, d := range result {
					assert.True(t, d.IsEmpty())
				}
			},
		},
		{
			name: "result is sorted by index",
			input: []menuday.Dish{
				menuday.NewDish(3, &mealA, "three", ""),
				menuday.NewDish(1, &mealB, "one", ""),
			},
			check: func(t *testing.T, result []menuday.Dish) {
				assert.Equal(t, "one", result[0].Name())
				assert.True(t, result[1].IsEmpty())
				assert.Equal(t, "three", result[2].Name())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := menuday.NormalizeDishes(tc.input)
			require.Len(t, result, menuday.SlotCount)
			tc.check(t, result)
		})
	}
}

func TestNormalizeDishesIdempotent(t *testing.T) {
	mealA := uuid.New()
	input := []menuday.Dish{
		menuday.NewDish(2, &mealA, "Casado", "no beans"),
		menuday.NewDish(5, &mealA, "dropped", ""),
	}

	once := menuday.NormalizeDishes(input)
	twice := menuday.NormalizeDishes(once)

	assert.Equal(t, once, twice)
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"draft", "published", "closed"} {
		st, err := menuday.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(st))
	}

	_, err := menuday.NewStatus("archived")
	assert.ErrorIs(t, err, menuday.ErrInvalidStatus)
}
