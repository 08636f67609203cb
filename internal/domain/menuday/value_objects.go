package menuday

import (
	"sort"

	"github.com/google/uuid"
)

// SlotCount is the fixed number of dish slots on every menu day.
const SlotCount = 3

// Dish is one slot of a day's menu. A slot without a meal bound to it is an
// empty placeholder that still occupies its index.
type Dish struct {
	index  int
	mealID *uuid.UUID
	name   string
	notes  string
}

func NewDish(index int, mealID *uuid.UUID, name, notes string) Dish {
	return Dish{index: index, mealID: mealID, name: name, notes: notes}
}

func EmptyDish(index int) Dish {
	return Dish{index: index}
}

func (d Dish) Index() int         { return d.index }
func (d Dish) MealID() *uuid.UUID { return d.mealID }
func (d Dish) Name() string       { return d.name }
func (d Dish) Notes() string      { return d.notes }

func (d Dish) IsEmpty() bool {
	return d.mealID == nil
}

// NormalizeDishes canonicalizes an arbitrary caller-supplied slice into
// exactly SlotCount slots sorted ascending by index: the first dish seen for
// each index 1..SlotCount wins, missing indices are synthesized empty, and
// everything else is discarded. Applying it twice yields the same result.
func NormalizeDishes(dishes []Dish) []Dish {
	byIndex := make(map[int]Dish, SlotCount)
	for _, d := range dishes {
		if d.index < 1 || d.index > SlotCount {
			continue
		}
		if _, taken := byIndex[d.index]; taken {
			continue
		}
		byIndex[d.index] = d
	}

	result := make([]Dish, 0, SlotCount)
	for i := 1; i <= SlotCount; i++ {
		if d, ok := byIndex[i]; ok {
			result = append(result, d)
		} else {
			result = append(result, EmptyDish(i))
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].index < result[j].index })
	return result
}

func EmptyDishes() []Dish {
	return NormalizeDishes(nil)
}
