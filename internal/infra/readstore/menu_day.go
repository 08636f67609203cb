package readstore

import (
	"context"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type menuDayReadStore struct {
	db *pgxpool.Pool
}

func NewMenuDayReadStore(db *pgxpool.Pool) queries.MenuDayReadStore {
	return &menuDayReadStore{db: db}
}

func (s *menuDayReadStore) FindWeek(ctx context.Context, cookID uuid.UUID, weekStart schedule.Day) ([]*queries.MenuDayView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, cook_id, menu_date, time_zone, status, dishes, published_at, closed_at, confirmations, created_at, updated_at
		 FROM menu_days
		 WHERE cook_id = $1 AND menu_date >= $2 AND menu_date < $3
		 ORDER BY menu_date`,
		cookID, pgconv.DayToPgtype(weekStart), pgconv.DayToPgtype(weekStart.AddDays(7)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query menu week", err)
	}
	defer rows.Close()

	var views []*queries.MenuDayView
	for rows.Next() {
		var (
			id, cook              uuid.UUID
			menuDate              pgtype.Date
			timeZone, status      string
			dishesRaw             []byte
			publishedAt, closedAt pgtype.Timestamptz
			confirmations         int32
			createdAt, updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&id, &cook, &menuDate, &timeZone, &status, &dishesRaw,
			&publishedAt, &closedAt, &confirmations, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu day row", err)
		}

		dishes, err := infra.DecodeDishes(dishesRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode dishes", err)
		}

		dishViews := make([]queries.DishView, len(dishes))
		for i, d := range dishes {
			dishViews[i] = queries.DishView{
				Index:  d.Index(),
				MealID: d.MealID(),
				Name:   d.Name(),
				Notes:  d.Notes(),
			}
		}

		views = append(views, &queries.MenuDayView{
			ID:            id,
			CookID:        cook,
			Date:          menuDate.Time.UTC(),
			TimeZone:      timeZone,
			Status:        status,
			Dishes:        dishViews,
			PublishedAt:   pgconv.TimePtrFromPgtype(publishedAt),
			ClosedAt:      pgconv.TimePtrFromPgtype(closedAt),
			Confirmations: confirmations,
			CreatedAt:     pgconv.TimeFromPgtype(createdAt),
			UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu week rows", err)
	}

	return views, nil
}
