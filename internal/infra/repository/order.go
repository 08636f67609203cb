package repository

import (
	"context"

	"lunchmate/internal/domain/order"
	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, customer_id, cook_id, meal_id, delivery_date, price_cents, status, cancel_until, time_zone, created_at, updated_at`

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) commands.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByKey(ctx context.Context, customerID, cookID uuid.UUID, day schedule.Day) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 AND cook_id = $2 AND delivery_date = $3`,
		customerID, cookID, pgconv.TimeToPgtype(day.UTCKey()),
	)

	found, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return found, nil
}

func (r *orderRepository) Insert(ctx context.Context, o *order.Order) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO orders (customer_id, cook_id, meal_id, delivery_date, price_cents, status, cancel_until, time_zone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+orderColumns,
		o.CustomerID(),
		o.CookID(),
		o.MealID(),
		pgconv.TimeToPgtype(o.DeliveryDay().UTCKey()),
		o.PriceCents(),
		string(o.Status()),
		pgconv.TimeToPgtype(o.CancelUntil()),
		o.TimeZone(),
	)

	created, err := scanOrder(row)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert order", err)
	}
	return created, nil
}

func (r *orderRepository) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE orders
		 SET meal_id = $4, price_cents = $5, status = $6, cancel_until = $7, time_zone = $8, updated_at = now()
		 WHERE customer_id = $1 AND cook_id = $2 AND delivery_date = $3
		 RETURNING `+orderColumns,
		o.CustomerID(),
		o.CookID(),
		pgconv.TimeToPgtype(o.DeliveryDay().UTCKey()),
		o.MealID(),
		o.PriceCents(),
		string(o.Status()),
		pgconv.TimeToPgtype(o.CancelUntil()),
		o.TimeZone(),
	)

	updated, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update order", err)
	}
	return updated, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id, customerID, cookID, mealID uuid.UUID
		deliveryDate                   pgtype.Timestamptz
		priceCents                     int32
		status, timeZone               string
		cancelUntil                    pgtype.Timestamptz
		createdAt, updatedAt           pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &customerID, &cookID, &mealID, &deliveryDate,
		&priceCents, &status, &cancelUntil, &timeZone, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	st, err := order.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		id, customerID, cookID, mealID,
		schedule.DayOf(deliveryDate.Time.UTC()),
		timeZone,
		priceCents,
		st,
		cancelUntil.Time.UTC(),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
