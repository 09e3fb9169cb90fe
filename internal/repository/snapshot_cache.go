package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"parket-portal/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotKeyPrefix = "chat:snapshot:"

// CachedSnapshot is the per-session read-only chat state: the AI knowledge
// catalog, the product feed, and the active system prompt. Loaded once at
// session start, refreshed only on session clear or TTL expiry.
type CachedSnapshot struct {
	Catalog      []models.KnowledgeItem `json:"catalog"`
	Products     []models.Product       `json:"products"`
	SystemPrompt string                 `json:"system_prompt"`
}

type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached snapshot for a session, or nil on cache miss.
func (c *SnapshotCache) Get(ctx context.Context, sessionID string) (*CachedSnapshot, error) {
	data, err := c.client.Get(ctx, snapshotKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap CachedSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt cache entry is a miss, not a failure
		c.logger.Warn("Dropping corrupt snapshot cache entry", zap.String("session_id", sessionID), zap.Error(err))
		_ = c.client.Del(ctx, snapshotKeyPrefix+sessionID).Err()
		return nil, nil
	}

	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, sessionID string, snap *CachedSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKeyPrefix+sessionID, data, c.ttl).Err()
}

func (c *SnapshotCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, snapshotKeyPrefix+sessionID).Err()
}
