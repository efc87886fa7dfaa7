package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
)

// RedisStore keeps snapshots as JSON strings with the login's TTL, so Redis
// expires abandoned sessions on its own.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps a connected client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, id string, snap portal.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, config.CacheKey.SessionStateKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (portal.Snapshot, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.SessionStateKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return portal.Snapshot{}, ErrNotFound
		}
		return portal.Snapshot{}, fmt.Errorf("load session: %w", err)
	}

	var snap portal.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return portal.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Update only writes when the key still exists (SET XX KEEPTTL).
func (s *RedisStore) Update(ctx context.Context, id string, snap portal.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = s.rdb.SetArgs(ctx, config.CacheKey.SessionStateKey(id), data, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, config.CacheKey.SessionStateKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// countBatch is the SCAN page size hint.
const countBatch = 256

// Count walks the session keyspace with SCAN.
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	n := 0
	iter := s.rdb.Scan(ctx, 0, config.CacheKey.SessionStatePattern(), countBatch).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
