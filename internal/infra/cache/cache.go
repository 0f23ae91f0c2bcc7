// Package cache provides a Redis-backed read-through cache for the catalog
// query layer. A nil client turns every operation into a no-op, so the
// service runs unchanged when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"prelovin/config"
	"prelovin/internal/domain/lifecycle"
	"prelovin/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 5 * time.Minute

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// QueryCache stores serialized query results keyed by operation name plus
// parameters, with operation-scoped invalidation.
type QueryCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Disabled returns a cache whose reads always miss and whose writes are
// dropped.
func Disabled() *QueryCache {
	return &QueryCache{}
}

// New creates the query cache. When no Redis address is configured the
// returned cache passes every call through without touching the network.
func New(params Params) (*QueryCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("query cache disabled, no Redis address configured")

		return &QueryCache{logger: params.Logger}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &QueryCache{
		client: client,
		logger: params.Logger,
		ttl:    ttl,
	}, nil
}

// Key builds the cache key for an operation and its parameters.
func Key(operation string, params ...any) string {
	if len(params) == 0 {
		return fmt.Sprintf("query:%s", operation)
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}

	return fmt.Sprintf("query:%s:%s", operation, strings.Join(parts, ":"))
}

// Get unmarshals the cached value for key into dest. It returns ErrCacheMiss
// when the key is absent or the cache is disabled.
func (c *QueryCache) Get(ctx context.Context, key string, dest any) error {
	if c.client == nil {
		return ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}

		return errors.Wrap(err, "failed to read from query cache")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, "failed to decode cached value")
	}

	return nil
}

// Set stores value under key for the configured TTL. Failures are logged
// and swallowed; the cache never breaks a read path.
func (c *QueryCache) Set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode value for query cache",
			slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to write to query cache",
			slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate drops every cached entry for the named operations.
func (c *QueryCache) Invalidate(ctx context.Context, operations ...string) {
	if c.client == nil {
		return
	}

	for _, operation := range operations {
		pattern := fmt.Sprintf("query:%s*", operation)

		iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to scan query cache keys",
				slog.String("pattern", pattern), slog.Any("error", err))

			continue
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.WarnContext(ctx, "failed to invalidate query cache keys",
					slog.String("pattern", pattern), slog.Any("error", err))
			}
		}
	}
}
