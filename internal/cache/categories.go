package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	// Default lifetime of the cached category listing
	defaultCategoryTTL = 10 * time.Minute

	categoriesKey = "trivia:categories"
)

// CategoryCache stores the category listing in Redis
type CategoryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCategoryCache creates a new category cache. A non-positive ttl uses the default.
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = defaultCategoryTTL
	}
	return &CategoryCache{redis: client, ttl: ttl}
}

// GetCategories returns the cached listing and whether it was present
func (c *CategoryCache) GetCategories(ctx context.Context) ([]domain.Category, bool, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	return categories, true, nil
}

// SetCategories stores the listing
func (c *CategoryCache) SetCategories(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := c.redis.Set(ctx, categoriesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store categories: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}
