package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agency-service/internal/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Client wraps the go-redis client behind the agency cache surface
// (import summaries and dashboard stats).
type Client struct {
	client *redis.Client
}

// NewRedisClient connects with the service redis config and verifies the
// connection before handing the client out. The service treats redis as
// optional; callers degrade to uncached reads when this fails.
func NewRedisClient(cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "host", cfg.Host, "port", cfg.Port, "db", cfg.DB)
	return &Client{client: client}, nil
}

// GetClient exposes the underlying go-redis client for the cache layers.
func (c *Client) GetClient() *redis.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}
