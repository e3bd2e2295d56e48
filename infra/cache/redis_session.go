package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/expensetracker/pkg/cache"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore implements cache.SessionStore using Redis string keys.
type RedisSessionStore struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewRedisSessionStore creates a RedisSessionStore from a redis URL such as
// redis://:password@localhost:6379/0.
func NewRedisSessionStore(
	url string,
	prefix string,
	timeout time.Duration,
	logger *slog.Logger,
) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisSessionStoreWithClient(redis.NewClient(opt), prefix, timeout, logger), nil
}

// NewRedisSessionStoreWithClient wraps an existing client.
func NewRedisSessionStoreWithClient(
	client redis.UniversalClient,
	prefix string,
	timeout time.Duration,
	logger *slog.Logger,
) *RedisSessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RedisSessionStore{client: client, prefix: prefix, timeout: timeout, logger: logger}
}

func (r *RedisSessionStore) key(userID string) string {
	return r.prefix + cache.SessionKey(userID)
}

// Ping checks connectivity.
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *RedisSessionStore) Set(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(userID), refreshToken, ttl).Err(); err != nil {
		r.logger.Error("Redis session set error", "user_id", userID, "error", err)
		return unavailable(err)
	}
	r.logger.Debug("Redis session set", "user_id", userID, "ttl", ttl)
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis session miss", "user_id", userID)
		return "", cache.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Redis session get error", "user_id", userID, "error", err)
		return "", unavailable(err)
	}
	return val, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		r.logger.Error("Redis session delete error", "user_id", userID, "error", err)
		return unavailable(err)
	}
	r.logger.Debug("Redis session delete", "user_id", userID)
	return nil
}

// Close releases the underlying client.
func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

func unavailable(err error) error {
	return fmt.Errorf("%w: session store: %v", domain.ErrUnavailable, err)
}

var _ cache.SessionStore = (*RedisSessionStore)(nil)
