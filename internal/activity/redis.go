package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"marketai/internal/models"
)

const defaultKeyPrefix = "marketai:activity:"

// RedisStore shares activity logs between replicas. Entries live in a sorted
// set scored by id; ids come from INCR so concurrent appends never collide.
// Both keys expire with the session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store whose keys expire ttl after the last append.
// A zero ttl keeps keys until they are deleted.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) seqKey(sessionID string) string {
	return s.prefix + sessionID + ":seq"
}

func (s *RedisStore) entriesKey(sessionID string) string {
	return s.prefix + sessionID + ":entries"
}

// Append allocates the next id and stores the entry.
func (s *RedisStore) Append(ctx context.Context, sessionID string, entry models.Activity) (models.Activity, error) {
	if sessionID == "" {
		return models.Activity{}, ErrSessionRequired
	}

	id, err := s.client.Incr(ctx, s.seqKey(sessionID)).Result()
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to allocate activity id: %w", err)
	}
	entry.ID = id

	payload, err := json.Marshal(entry)
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to encode activity: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, s.entriesKey(sessionID), redis.Z{Score: float64(id), Member: payload})
	if s.ttl > 0 {
		pipe.Expire(ctx, s.entriesKey(sessionID), s.ttl)
		pipe.Expire(ctx, s.seqKey(sessionID), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Activity{}, fmt.Errorf("failed to store activity: %w", err)
	}

	return entry, nil
}

// List returns up to limit entries, newest first.
func (s *RedisStore) List(ctx context.Context, sessionID string, limit int) ([]models.Activity, error) {
	if sessionID == "" {
		return []models.Activity{}, nil
	}

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	members, err := s.client.ZRevRange(ctx, s.entriesKey(sessionID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}

	out := make([]models.Activity, 0, len(members))
	for _, m := range members {
		var entry models.Activity
		if err := json.Unmarshal([]byte(m), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode activity: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
