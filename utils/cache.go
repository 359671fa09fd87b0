// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"multisport/config"

	"github.com/go-redis/redis/v8"
)

// NewSessionCacheClient connects the Redis client backing the conversation
// session store. The caller owns the client and wires it into the session
// repository.
func NewSessionCacheClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	return client, nil
}
