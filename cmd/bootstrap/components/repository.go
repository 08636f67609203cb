package components

import (
	"lunchmate/internal/infra/cache"
	"lunchmate/internal/infra/readstore"
	repo_impl "lunchmate/internal/infra/repository"
	"lunchmate/internal/pkg/config"
	"lunchmate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewMenuDayRepository,
		repo_impl.NewOrderRepository,
		repo_impl.NewMealCatalog,
		readstore.NewMenuDayReadStore,
		readstore.NewOrderReadStore,
		readstore.NewUserReadStore,
		// The plain meal read store is constructed inside the cached wrapper;
		// providing both would register queries.MealReadStore twice.
		NewCachedMealReadStore,
	),
)

// NewCachedMealReadStore layers the redis read-through cache over the meal
// read store. Meal and rating data is external catalog data; menu days and
// orders are never cached.
func NewCachedMealReadStore(pool *pgxpool.Pool, client *redis.Client, cfg config.Config) queries.MealReadStore {
	return cache.NewMealReadCache(readstore.NewMealReadStore(pool), client, cfg.Redis)
}
