package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orderalone/models"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// RedisMenuCache stores whole menu documents as JSON.
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ MenuCache = (*RedisMenuCache)(nil)

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) key(id uint) string {
	return fmt.Sprintf("menu:%d", id)
}

func (c *RedisMenuCache) Get(ctx context.Context, id uint) (*models.Menu, error) {
	data, err := c.Client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var menu models.Menu
	if err := json.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("decode cached menu %d: %w", id, err)
	}
	return &menu, nil
}

func (c *RedisMenuCache) Set(ctx context.Context, menu *models.Menu) error {
	data, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.key(menu.ID), data, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, id uint) error {
	return c.Client.Del(ctx, c.key(id)).Err()
}
