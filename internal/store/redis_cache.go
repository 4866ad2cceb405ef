package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

const (
	redisDialTimeout  = 3 * time.Second
	redisReadTimeout  = 2 * time.Second
	redisWriteTimeout = 2 * time.Second
	redisPingTimeout  = 2 * time.Second

	wineCacheKeyPrefix = "wine:"
)

// NewRedisClient connects to redis. address is either a "redis://" URL or a
// plain "host:port".
func NewRedisClient(ctx context.Context, address string, log *logger.Logger) (*redis.Client, error) {
	options, err := redisOptions(address)
	if err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("invalid redis address")
		return nil, err
	}

	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5
	options.DialTimeout = redisDialTimeout
	options.ReadTimeout = redisReadTimeout
	options.WriteTimeout = redisWriteTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("addr", options.Addr).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("addr", options.Addr).Msg("connected to redis successfully")

	return client, nil
}

func redisOptions(address string) (*redis.Options, error) {
	if strings.HasPrefix(address, "redis://") || strings.HasPrefix(address, "rediss://") {
		options, err := redis.ParseURL(address)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return options, nil
	}

	if address == "" {
		return nil, errors.New("empty redis address")
	}

	return &redis.Options{Addr: address}, nil
}

// redisWineCache stores JSON-encoded wines under "wine:<id>".
type redisWineCache struct {
	client redis.UniversalClient
}

// NewRedisWineCache returns a [WineCache] backed by client.
func NewRedisWineCache(client redis.UniversalClient) WineCache {
	return &redisWineCache{client: client}
}

func wineCacheKey(id uuid.UUID) string {
	return wineCacheKeyPrefix + id.String()
}

func (c *redisWineCache) Get(ctx context.Context, id uuid.UUID) (models.Wine, bool, error) {
	payload, err := c.client.Get(ctx, wineCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Wine{}, false, nil
	}
	if err != nil {
		return models.Wine{}, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	wine, err := decodeCachedWine(payload)
	if err != nil {
		return models.Wine{}, false, err
	}

	return wine, true, nil
}

func (c *redisWineCache) Set(ctx context.Context, wine models.Wine, ttl time.Duration) error {
	payload, err := json.Marshal(wine)
	if err != nil {
		return fmt.Errorf("error encoding wine for cache: %w", err)
	}

	if err = c.client.Set(ctx, wineCacheKey(wine.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

func (c *redisWineCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, wineCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func decodeCachedWine(payload []byte) (models.Wine, error) {
	var wine models.Wine
	if err := json.Unmarshal(payload, &wine); err != nil {
		return models.Wine{}, fmt.Errorf("%w: %w", ErrCacheCorrupted, err)
	}
	return wine, nil
}
