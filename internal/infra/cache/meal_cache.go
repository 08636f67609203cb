package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lunchmate/internal/pkg/config"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient opens the shared redis connection used by the read-side
// caches.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

// mealReadCache is a read-through cache over the meal read store. Meals and
// rating aggregates are external catalog data and safe to serve slightly
// stale; menu days and orders are never cached.
type mealReadCache struct {
	inner  queries.MealReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewMealReadCache(inner queries.MealReadStore, client *redis.Client, cfg config.RedisConfig) queries.MealReadStore {
	return &mealReadCache{
		inner:  inner,
		client: client,
		ttl:    cfg.MealTTL,
	}
}

func (c *mealReadCache) FindByID(ctx context.Context, mealID uuid.UUID) (*queries.MealView, error) {
	key := "meal:" + mealID.String()

	var cached queries.MealView
	if ok := c.get(ctx, key, &cached); ok {
		return &cached, nil
	}

	view, err := c.inner.FindByID(ctx, mealID)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, view)
	return view, nil
}

func (c *mealReadCache) RatingFor(ctx context.Context, mealID uuid.UUID) (*queries.RatingView, error) {
	key := "meal:rating:" + mealID.String()

	var cached queries.RatingView
	if ok := c.get(ctx, key, &cached); ok {
		return &cached, nil
	}

	view, err := c.inner.RatingFor(ctx, mealID)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, view)
	return view, nil
}

// get loads and decodes a cached value. Cache failures are logged and treated
// as misses; the source of truth always answers.
func (c *mealReadCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("meal cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("meal cache decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *mealReadCache) set(ctx context.Context, key string, src any) {
	data, err := json.Marshal(src)
	if err != nil {
		slog.Warn("meal cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("meal cache write failed", "key", key, "error", err)
	}
}
