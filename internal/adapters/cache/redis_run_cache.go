package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const runKeyPrefix = "freight:run:"

// RedisRunCache keeps finished simulation runs keyed by network fingerprint.
type RedisRunCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRunCache(client *redis.Client, ttl time.Duration) *RedisRunCache {
	return &RedisRunCache{Client: client, TTL: ttl}
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Fetch the cached run for a fingerprint.
func (c *RedisRunCache) Get(ctx context.Context, fingerprint string) (_ *domain.SimulationRun, err error) {
	defer obs.Time(ctx, "run.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("run cache: client is nil")
	}
	if strings.TrimSpace(fingerprint) == "" {
		return nil, errors.New("get run cache: fingerprint must not be empty")
	}

	b, err := c.Client.Get(ctx, runKeyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get run cache: %w", err)
	}

	var run domain.SimulationRun
	if err := json.Unmarshal(b, &run); err != nil {
		return nil, fmt.Errorf("get run cache: decode: %w", err)
	}
	return &run, nil
}

// Store a run under its fingerprint, replacing any earlier entry.
func (c *RedisRunCache) Put(ctx context.Context, run *domain.SimulationRun) (err error) {
	defer obs.Time(ctx, "run.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("run cache: client is nil")
	}
	if run == nil || strings.TrimSpace(run.Fingerprint) == "" {
		return errors.New("put run cache: fingerprint must not be empty")
	}

	b, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("put run cache: encode: %w", err)
	}
	if err := c.Client.Set(ctx, runKeyPrefix+run.Fingerprint, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("put run cache: %w", err)
	}
	return nil
}
