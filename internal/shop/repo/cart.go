package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

type RedisCartRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCartRepository(rdb redis.Cmdable, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisCartRepository) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:entries", sessionID)
}

// Save rewrites the session list in one transaction and refreshes its TTL.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, ids []uuid.UUID) error {
	key := r.cartKey(sessionID)

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(ids) == 0 {
			return nil
		}
		vals := make([]any, len(ids))
		for i, id := range ids {
			vals[i] = id.String()
		}
		pipe.RPush(ctx, key, vals...)
		// extend TTL on touch
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save cart to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) ([]uuid.UUID, error) {
	key := r.cartKey(sessionID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []uuid.UUID{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load cart from redis")
		return nil, errx.WrapRedis(err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i, s := range rows {
		id, err := uuid.Parse(s)
		if err != nil {
			logx.Error().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("failed to parse cart entry")
			return nil, fmt.Errorf("parse cart entry at index %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	key := r.cartKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete cart from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

// Count returns the number of stored entries for the session.
func (r *RedisCartRepository) Count(ctx context.Context, sessionID string) (int, error) {
	key := r.cartKey(sessionID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get cart size from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.CartRepository = (*RedisCartRepository)(nil)
