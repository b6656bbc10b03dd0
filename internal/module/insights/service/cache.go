package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"financequest/internal/module/insights/domain"
)

const (
	snapshotCacheTTL  = 1 * time.Hour
	snapshotKeyPrefix = "insights:month-snapshot"
)

// SnapshotCache caches a user's month snapshot in Redis. It degrades to
// a no-op when the client can't reach Redis, rather than failing the
// request — the snapshot is always derivable from the transaction
// store, so a cache miss just costs a recompute.
type SnapshotCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSnapshotCache creates a new month snapshot cache.
func NewSnapshotCache(client *redis.Client, logger *zap.Logger) *SnapshotCache {
	return &SnapshotCache{client: client, logger: logger}
}

func (c *SnapshotCache) buildKey(userID uuid.UUID, year, month int) string {
	return fmt.Sprintf("%s:%s:%04d-%02d", snapshotKeyPrefix, userID.String(), year, month)
}

// Get returns the cached snapshot, or (nil, nil) on a miss or when
// Redis is unavailable.
func (c *SnapshotCache) Get(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthSnapshot, error) {
	if c.client == nil {
		return nil, nil
	}

	key := c.buildKey(userID, year, month)
	bytes, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("failed to read cached month snapshot", zap.String("key", key), zap.Error(err))
		return nil, nil
	}

	var snapshot domain.MonthSnapshot
	if err := json.Unmarshal(bytes, &snapshot); err != nil {
		c.logger.Warn("failed to unmarshal cached month snapshot", zap.String("key", key), zap.Error(err))
		return nil, nil
	}

	return &snapshot, nil
}

// Set caches the snapshot. Failure is logged and swallowed — caching is
// an optimization, not a correctness requirement.
func (c *SnapshotCache) Set(ctx context.Context, userID uuid.UUID, year, month int, snapshot *domain.MonthSnapshot) {
	if c.client == nil {
		return
	}

	key := c.buildKey(userID, year, month)
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Warn("failed to marshal month snapshot for caching", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, bytes, snapshotCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache month snapshot", zap.String("key", key), zap.Error(err))
	}
}
