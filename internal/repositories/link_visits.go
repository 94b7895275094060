package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/second-brain/internal/logger"
)

const linkVisitsKeyPrefix = "link_visits:"

// LinkVisitRepository keeps per-hash redirect counters in Redis.
type LinkVisitRepository struct {
	client redis.Cmdable
}

func NewLinkVisitRepository(client redis.Cmdable) *LinkVisitRepository {
	return &LinkVisitRepository{client: client}
}

func linkVisitsKey(hash string) string {
	return linkVisitsKeyPrefix + hash
}

// Increment bumps the counter of hash and returns the new value.
func (r *LinkVisitRepository) Increment(ctx context.Context, hash string) (int64, error) {
	key := linkVisitsKey(hash)
	val, err := r.client.Incr(ctx, key).Result()

	logger.Log.Infow("redis",
		"op", "INCR",
		"key", key,
		"result", val,
		"error", err,
	)

	return val, err
}

// Get returns the counter of hash, zero when it was never visited.
func (r *LinkVisitRepository) Get(ctx context.Context, hash string) (int64, error) {
	key := linkVisitsKey(hash)
	val, err := r.client.Get(ctx, key).Int64()

	logger.Log.Infow("redis",
		"op", "GET",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

// GetMany returns the counters of hashes; missing keys count as zero.
func (r *LinkVisitRepository) GetMany(ctx context.Context, hashes []string) (map[string]int64, error) {
	result := make(map[string]int64, len(hashes))
	if len(hashes) == 0 {
		return result, nil
	}

	keys := make([]string, len(hashes))
	for i, h := range hashes {
		keys[i] = linkVisitsKey(h)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()

	logger.Log.Infow("redis",
		"op", "MGET",
		"keys", len(keys),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	for i, v := range vals {
		var n int64
		if s, ok := v.(string); ok {
			if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
				n = parsed
			}
		}
		result[hashes[i]] = n
	}
	return result, nil
}
