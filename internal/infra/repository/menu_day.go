package repository

import (
	"context"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const menuDayColumns = `id, cook_id, menu_date, time_zone, status, dishes, published_at, closed_at, confirmations, created_at, updated_at`

type menuDayRepository struct {
	db *pgxpool.Pool
}

func NewMenuDayRepository(db *pgxpool.Pool) commands.MenuDayRepository {
	return &menuDayRepository{db: db}
}

func (r *menuDayRepository) FindByCookAndDay(ctx context.Context, cookID uuid.UUID, day schedule.Day) (*menuday.MenuDay, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+menuDayColumns+` FROM menu_days WHERE cook_id = $1 AND menu_date = $2`,
		cookID, pgconv.DayToPgtype(day),
	)

	found, err := scanMenuDay(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu day", err)
	}
	return found, nil
}

func (r *menuDayRepository) Insert(ctx context.Context, m *menuday.MenuDay) (*menuday.MenuDay, error) {
	dishes, err := infra.EncodeDishes(m.Dishes())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode dishes", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO menu_days (cook_id, menu_date, time_zone, status, dishes, published_at, closed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+menuDayColumns,
		m.CookID(),
		pgconv.DayToPgtype(m.Day()),
		m.TimeZone(),
		string(m.Status()),
		dishes,
		pgconv.TimePtrToPgtype(m.PublishedAt()),
		pgconv.TimePtrToPgtype(m.ClosedAt()),
	)

	created, err := scanMenuDay(row)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("menu day already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert menu day", err)
	}
	return created, nil
}

func (r *menuDayRepository) Update(ctx context.Context, m *menuday.MenuDay) (*menuday.MenuDay, error) {
	dishes, err := infra.EncodeDishes(m.Dishes())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode dishes", err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE menu_days
		 SET time_zone = $3, status = $4, dishes = $5, published_at = $6, closed_at = $7, updated_at = now()
		 WHERE cook_id = $1 AND menu_date = $2
		 RETURNING `+menuDayColumns,
		m.CookID(),
		pgconv.DayToPgtype(m.Day()),
		m.TimeZone(),
		string(m.Status()),
		dishes,
		pgconv.TimePtrToPgtype(m.PublishedAt()),
		pgconv.TimePtrToPgtype(m.ClosedAt()),
	)

	updated, err := scanMenuDay(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update menu day", err)
	}
	return updated, nil
}

func scanMenuDay(row pgx.Row) (*menuday.MenuDay, error) {
	var (
		id, cookID            uuid.UUID
		menuDate              pgtype.Date
		timeZone, status      string
		dishesRaw             []byte
		publishedAt, closedAt pgtype.Timestamptz
		confirmations         int32
		createdAt, updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &cookID, &menuDate, &timeZone, &status, &dishesRaw,
		&publishedAt, &closedAt, &confirmations, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	dishes, err := infra.DecodeDishes(dishesRaw)
	if err != nil {
		return nil, err
	}

	st, err := menuday.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return menuday.ReconstructMenuDay(
		id, cookID,
		pgconv.DayFromPgtype(menuDate),
		timeZone,
		st,
		dishes,
		pgconv.TimePtrFromPgtype(publishedAt),
		pgconv.TimePtrFromPgtype(closedAt),
		confirmations,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
