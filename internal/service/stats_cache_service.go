package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized dashboard counters
	RedisDashboardStatsKey = "dashboard:statistics"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// StatsCache caches dashboard counters between recomputations. Get reports
// ok=false on a miss.
type StatsCache interface {
	Get(ctx context.Context) (stats *entity.DashboardStats, ok bool, err error)
	Set(ctx context.Context, stats *entity.DashboardStats) error
	Invalidate(ctx context.Context) error
}

type redisStatsCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisStatsCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) StatsCache {
	return &redisStatsCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisStatsCache) Get(ctx context.Context) (*entity.DashboardStats, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, RedisDashboardStatsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get dashboard stats: %w", err)
	}

	var stats entity.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warnf("Discarding corrupt dashboard stats cache entry: %+v", err)
		return nil, false, nil
	}
	return &stats, true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, stats *entity.DashboardStats) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := c.redisClient.Set(ctx, RedisDashboardStatsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set dashboard stats: %w", err)
	}
	c.log.Debugf("Cached dashboard stats for %v", c.ttl)
	return nil
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, RedisDashboardStatsKey).Err(); err != nil {
		return fmt.Errorf("invalidate dashboard stats: %w", err)
	}
	return nil
}

type noopStatsCache struct{}

// NewNoopStatsCache returns a cache that never hits, used when Redis is
// disabled.
func NewNoopStatsCache() StatsCache {
	return noopStatsCache{}
}

func (noopStatsCache) Get(context.Context) (*entity.DashboardStats, bool, error) {
	return nil, false, nil
}

func (noopStatsCache) Set(context.Context, *entity.DashboardStats) error {
	return nil
}

func (noopStatsCache) Invalidate(context.Context) error {
	return nil
}
