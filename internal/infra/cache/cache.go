package cache

import (
	"context"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const (
	brandKeyPrefix = "backoffice:brand:"
	pingTimeout    = 5 * time.Second
)

// Params holds dependencies for the brand cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed brand cache when an address is configured,
// and a process-local cache otherwise
func New(params Params) (service.BrandCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || cfg.RedisAddr == "" {
		params.Logger.Info("Redis not configured, using in-memory brand cache")

		return NewMemoryCache(time.Now), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.RedisAddr)
	}
	params.Logger.Info("Connected to Redis brand cache", slog.String("addr", cfg.RedisAddr))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Redis brand cache")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCache(client), nil
}

type redisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a Redis client
func NewRedisCache(client redis.Cmdable) service.BrandCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, sku string) (string, bool, error) {
	brand, err := c.client.Get(ctx, brandKeyPrefix+sku).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.WithStack(err)
	}

	return brand, true, nil
}

// Set stores an empty brand too, so unknown SKUs are not looked up again until ttl expires.
func (c *redisCache) Set(ctx context.Context, sku, brand string, ttl time.Duration) error {
	return errors.WithStack(c.client.Set(ctx, brandKeyPrefix+sku, brand, ttl).Err())
}
