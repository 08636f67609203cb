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

type orderReadStore struct {
	db *pgxpool.Pool
}

func NewOrderReadStore(db *pgxpool.Pool) queries.OrderReadStore {
	return &orderReadStore{db: db}
}

func (s *orderReadStore) FindWeekByCustomer(ctx context.Context, customerID, cookID uuid.UUID, weekStart schedule.Day) ([]*queries.OrderView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, customer_id, cook_id, meal_id, delivery_date, price_cents, status, cancel_until, time_zone, created_at, updated_at
		 FROM orders
		 WHERE customer_id = $1 AND cook_id = $2 AND delivery_date >= $3 AND delivery_date < $4
		 ORDER BY delivery_date`,
		customerID, cookID,
		pgconv.TimeToPgtype(weekStart.UTCKey()),
		pgconv.TimeToPgtype(weekStart.AddDays(7).UTCKey()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order week", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		var (
			id, customer, cook, mealID uuid.UUID
			deliveryDate               pgtype.Timestamptz
			priceCents                 int32
			status, timeZone           string
			cancelUntil                pgtype.Timestamptz
			createdAt, updatedAt       pgtype.Timestamptz
		)
		if err := rows.Scan(
			&id, &customer, &cook, &mealID, &deliveryDate,
			&priceCents, &status, &cancelUntil, &timeZone, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}

		views = append(views, &queries.OrderView{
			ID:           id,
			CustomerID:   customer,
			CookID:       cook,
			MealID:       mealID,
			DeliveryDate: deliveryDate.Time.UTC(),
			PriceCents:   priceCents,
			Status:       status,
			CancelUntil:  cancelUntil.Time.UTC(),
			TimeZone:     timeZone,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
			UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order week rows", err)
	}

	return views, nil
}
