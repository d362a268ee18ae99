// internal/matching/pickviews.go
// Redis-backed store for the daily-pick viewed flag

package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const pickViewKeyPrefix = "daily_pick:viewed:"

// redisPickViewStore keeps one key per (date, user). Keys expire on their own
// after the TTL; PurgeOlderThan exists for explicit cleanup.
type redisPickViewStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPickViewStore(client *redis.Client, ttl time.Duration) PickViewStore {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &redisPickViewStore{client: client, ttl: ttl}
}

func (s *redisPickViewStore) HasViewed(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	exists, err := s.client.Exists(ctx, pickViewKey(userID, date)).Result()
	if err != nil {
		return false, fmt.Errorf("checking pick view: %w", err)
	}
	return exists > 0, nil
}

func (s *redisPickViewStore) MarkViewed(ctx context.Context, userID uuid.UUID, date string) error {
	if err := s.client.Set(ctx, pickViewKey(userID, date), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("marking pick view: %w", err)
	}
	return nil
}

// PurgeOlderThan deletes view flags for dates before the given one. Dates are
// formatted YYYY-MM-DD so string comparison orders them correctly.
func (s *redisPickViewStore) PurgeOlderThan(ctx context.Context, date string) (int, error) {
	var purged int
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pickViewKeyPrefix+"*", 100).Result()
		if err != nil {
			return purged, fmt.Errorf("scanning pick views: %w", err)
		}
		for _, key := range keys {
			// key layout: daily_pick:viewed:<date>:<user>
			if len(key) < len(pickViewKeyPrefix)+len("2006-01-02") {
				continue
			}
			if keyDate := key[len(pickViewKeyPrefix) : len(pickViewKeyPrefix)+len("2006-01-02")]; keyDate < date {
				if err := s.client.Del(ctx, key).Err(); err != nil {
					return purged, fmt.Errorf("purging pick view: %w", err)
				}
				purged++
			}
		}
		cursor = next
		if cursor == 0 {
			return purged, nil
		}
	}
}

func pickViewKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", pickViewKeyPrefix, date, userID)
}
