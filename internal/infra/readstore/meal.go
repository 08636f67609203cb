package readstore

import (
	"context"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mealReadStore struct {
	db *pgxpool.Pool
}

func NewMealReadStore(db *pgxpool.Pool) queries.MealReadStore {
	return &mealReadStore{db: db}
}

func (s *mealReadStore) FindByID(ctx context.Context, mealID uuid.UUID) (*queries.MealView, error) {
	var (
		view                  queries.MealView
		description, imageURL pgtype.Text
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, name, price_cents, description, image_url FROM meals WHERE id = $1`,
		mealID,
	).Scan(&view.ID, &view.Name, &view.PriceCents, &description, &imageURL)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meal", err)
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	return &view, nil
}

func (s *mealReadStore) RatingFor(ctx context.Context, mealID uuid.UUID) (*queries.RatingView, error) {
	var view queries.RatingView
	err := s.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM meal_reviews WHERE meal_id = $1`,
		mealID,
	).Scan(&view.Average, &view.Count)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate meal rating", err)
	}
	return &view, nil
}
