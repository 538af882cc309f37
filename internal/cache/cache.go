// Package cache mirrors finished battle records into Redis so replays
// survive a restart of a single node and can be served by its peers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/model"
)

const keyPrefix = "battle:"

// Key returns the Redis key of a battle record.
func Key(battleID string) string {
	return keyPrefix + battleID
}

// RecordCache stores JSON encoded records with a TTL.
type RecordCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and checks the connection.
func New(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RecordCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis %s: %w", cfg.Address, err)
	}
	return &RecordCache{rdb: rdb, ttl: ttl}, nil
}

// Put stores rec under its battle id.
func (c *RecordCache) Put(ctx context.Context, rec *model.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding battle %s: %w", rec.BattleID, err)
	}
	if err := c.rdb.Set(ctx, Key(rec.BattleID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching battle %s: %w", rec.BattleID, err)
	}
	return nil
}

// Get returns the cached record, or nil, nil when it is absent or expired.
func (c *RecordCache) Get(ctx context.Context, battleID string) (*model.Record, error) {
	raw, err := c.rdb.Get(ctx, Key(battleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading battle %s: %w", battleID, err)
	}

	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decoding battle %s: %w", battleID, err)
	}
	return &rec, nil
}

// Ping checks the connection; used by the health endpoint.
func (c *RecordCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the client.
func (c *RecordCache) Close() error {
	return c.rdb.Close()
}
