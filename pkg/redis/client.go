// Package redis wraps the redis client so callers can treat caching as
// optional: a disabled or unreachable cache degrades to pass-through.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Client struct {
	rdb     *goredis.Client
	enabled bool
	log     *zap.Logger
}

type Config struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	client := &Client{enabled: cfg.Enabled, log: log}
	if !cfg.Enabled {
		return client
	}

	client.rdb = goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled", zap.Error(err))
		client.enabled = false
	}
	return client
}

func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Get returns the cached value, or "" on miss or when caching is disabled.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != goredis.Nil {
			c.log.Debug("Redis get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set stores a value best-effort; cache write failures are not fatal.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if !c.enabled {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Debug("Redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
