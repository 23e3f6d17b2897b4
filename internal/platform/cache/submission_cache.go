package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"solvegrid/internal/domain/model"
)

// SubmissionLogCache stores the raw submission log fetched from a judge,
// keyed by (platform, handle), with a TTL. Only the unprocessed input is
// cached; every dashboard request still recomputes all derived statistics
// from scratch.
type SubmissionLogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSubmissionLogCache(rdb *redis.Client, ttl time.Duration) *SubmissionLogCache {
	return &SubmissionLogCache{rdb: rdb, ttl: ttl}
}

func logKey(platform, handle string) string {
	return fmt.Sprintf("submission_log:%s:%s", platform, handle)
}

// Get returns the cached log, or (nil, false, nil) on a miss.
func (c *SubmissionLogCache) Get(ctx context.Context, platform, handle string) ([]model.SubmissionEvent, bool, error) {
	raw, err := c.rdb.Get(ctx, logKey(platform, handle)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("SubmissionLogCache.Get: %w", err)
	}
	var events []model.SubmissionEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		// A corrupt entry is treated as a miss; the fetcher will overwrite it.
		return nil, false, nil
	}
	return events, true, nil
}

func (c *SubmissionLogCache) Set(ctx context.Context, platform, handle string, events []model.SubmissionEvent) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("SubmissionLogCache.Set: %w", err)
	}
	if err := c.rdb.Set(ctx, logKey(platform, handle), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("SubmissionLogCache.Set: %w", err)
	}
	return nil
}

func (c *SubmissionLogCache) Delete(ctx context.Context, platform, handle string) error {
	if err := c.rdb.Del(ctx, logKey(platform, handle)).Err(); err != nil {
		return fmt.Errorf("SubmissionLogCache.Delete: %w", err)
	}
	return nil
}
