package queries

import (
	"context"

	"lunchmate/internal/pkg/errs"
	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

var ErrMenuWeekUnavailable = errs.New("menu week unavailable")

type MenuDayReadStore interface {
	// FindWeek returns the cook's existing menu days in [weekStart, weekStart+7),
	// ordered by date. Days never touched by the cook are simply absent.
	FindWeek(ctx context.Context, cookID uuid.UUID, weekStart schedule.Day) ([]*MenuDayView, error)
}

type MenuQueries interface {
	GetWeek(ctx context.Context, cookID uuid.UUID, weekStart schedule.Day) ([]*MenuDayView, error)
}

type menuQueriesImpl struct {
	menuStore MenuDayReadStore
}

func NewMenuQueries(menuStore MenuDayReadStore) MenuQueries {
	return &menuQueriesImpl{menuStore: menuStore}
}

func (q *menuQueriesImpl) GetWeek(ctx context.Context, cookID uuid.UUID, weekStart schedule.Day) ([]*MenuDayView, error) {
	days, err := q.menuStore.FindWeek(ctx, cookID, weekStart)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuWeekUnavailable)
	}
	return days, nil
}
