package repository

import (
	"context"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mealCatalog struct {
	db *pgxpool.Pool
}

func NewMealCatalog(db *pgxpool.Pool) commands.MealCatalog {
	return &mealCatalog{db: db}
}

func (r *mealCatalog) GetMeal(ctx context.Context, mealID uuid.UUID) (*commands.MealSnapshot, error) {
	var snap commands.MealSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price_cents FROM meals WHERE id = $1`,
		mealID,
	).Scan(&snap.ID, &snap.Name, &snap.PriceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meal", err)
	}
	return &snap, nil
}
