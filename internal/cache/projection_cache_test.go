package cache_test

import (
	"path"
	"testing"

	"github.com/courtside/hoopcast/services/projection-service/internal/cache"
)

// Every key builder must produce keys the invalidation patterns can reach,
// or a player purge leaves stale payloads behind until TTL. path.Match's
// glob semantics cover the subset of redis glob syntax used here.
func TestInvalidatePatternsCoverEveryKeyBuilder(t *testing.T) {
	player := "Test Player"

	keys := map[string]string{
		"next-game": cache.NextGameKey(player, "2025-26", 10),
		"season":    cache.SeasonKey(player, "recent_seasons"),
		"all":       cache.AllKey(player, "2025-26"),
		"accuracy":  cache.AccuracyKey(player, "2025-26", 10),
		"gamelog":   cache.GameLogKey(player, "2025-26", 5),
	}

	patterns := cache.InvalidatePatterns(player)

	for name, key := range keys {
		matched := false
		for _, pattern := range patterns {
			if ok, err := path.Match(pattern, key); err != nil {
				t.Fatalf("bad pattern %q: %v", pattern, err)
			} else if ok {
				matched = true
			}
		}
		if !matched {
			t.Errorf("%s key %q not covered by invalidation patterns %v", name, key, patterns)
		}
	}
}

func TestInvalidatePatternsDoNotCrossPlayers(t *testing.T) {
	otherKey := cache.NextGameKey("Other Player", "2025-26", 10)

	for _, pattern := range cache.InvalidatePatterns("Test Player") {
		if ok, _ := path.Match(pattern, otherKey); ok {
			t.Errorf("pattern %q matches another player's key %q", pattern, otherKey)
		}
	}
}
