package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants. Projections move with every game played, so next-game
// forecasts expire quickly; career-based season projections are stable for
// much longer.
const (
	NextGameTTL = 6 * time.Hour
	SeasonTTL   = 24 * time.Hour
	AccuracyTTL = 6 * time.Hour
	GameLogTTL  = 2 * time.Hour
)

// ProjectionCache stores computed projection payloads in Redis
type ProjectionCache struct {
	client *redis.Client
}

// NewProjectionCache creates a projection cache
func NewProjectionCache(client *redis.Client) *ProjectionCache {
	return &ProjectionCache{
		client: client,
	}
}

// Set stores a payload under a projection key with the given TTL
func (c *ProjectionCache) Set(ctx context.Context, key string, payload interface{}, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Get loads a cached payload into out. Returns false on a miss.
func (c *ProjectionCache) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshaling cached payload: %w", err)
	}

	return true, nil
}

// InvalidatePatterns lists the key patterns that together cover every
// cached payload for a player, projections and game logs both
func InvalidatePatterns(player string) []string {
	return []string{
		fmt.Sprintf("projection:*:%s*", player),
		fmt.Sprintf("gamelog:%s:*", player),
	}
}

// Invalidate removes every cached payload for a player
func (c *ProjectionCache) Invalidate(ctx context.Context, player string) error {
	for _, pattern := range InvalidatePatterns(player) {
		iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}

	return nil
}

// NextGameKey builds the cache key for a next-game projection
func NextGameKey(player, season string, numGames int) string {
	return fmt.Sprintf("projection:next_game:%s:%s:%d", player, season, numGames)
}

// SeasonKey builds the cache key for a season projection method
func SeasonKey(player, method string) string {
	return fmt.Sprintf("projection:season:%s:%s", player, method)
}

// AllKey builds the cache key for a full projection bundle
func AllKey(player, season string) string {
	return fmt.Sprintf("projection:all:%s:%s", player, season)
}

// AccuracyKey builds the cache key for an accuracy report
func AccuracyKey(player, season string, numGamesBack int) string {
	return fmt.Sprintf("projection:accuracy:%s:%s:%d", player, season, numGamesBack)
}

// GameLogKey builds the cache key for an enriched game log
func GameLogKey(player, season string, lastN int) string {
	return fmt.Sprintf("gamelog:%s:%s:%d", player, season, lastN)
}
