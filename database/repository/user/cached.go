package userRepo

import (
	"context"
	"time"

	"shareit/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// UserExistsPrefix is the prefix of Redis keys caching user existence.
const UserExistsPrefix = "user:exists:"

// CachedUserRepo answers Exists from Redis and falls back to the wrapped
// repository on a miss. Only positive answers are cached, so a newly created
// user is never reported missing.
type CachedUserRepo struct {
	UserRepository
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewCachedUserRepo wraps repo. A nil cache disables caching.
func NewCachedUserRepo(repo UserRepository, cache *redis.Client, ttl time.Duration) *CachedUserRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedUserRepo{UserRepository: repo, Cache: cache, TTL: ttl}
}

func (r *CachedUserRepo) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return utils.GetLogger()
}

// Exists checks the cache first.
func (r *CachedUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	if r.Cache == nil {
		return r.UserRepository.Exists(ctx, id)
	}

	key := UserExistsPrefix + id
	_, err := r.Cache.Get(ctx, key).Result()
	if err == nil {
		return true, nil
	}
	if err != redis.Nil {
		r.logger().Warn("user cache lookup failed, falling back to DB",
			zap.String("userID", id), zap.Error(err))
	}

	ok, err := r.UserRepository.Exists(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	if err := r.Cache.Set(ctx, key, "1", r.TTL).Err(); err != nil {
		r.logger().Warn("failed to cache user", zap.String("userID", id), zap.Error(err))
	}
	return true, nil
}
