package cron

import (
	"context"
	"time"

	"multisport/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitSessionCacheMonitor pings the session cache periodically to surface
// connectivity loss at runtime. The robot keeps running on a lost cache; it
// just starts every conversation from scratch.
func InitSessionCacheMonitor(client *redis.Client, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ctx := context.Background()
		for {
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("session cache connection lost", zap.Error(err))
			}
			time.Sleep(interval)
		}
	}()
}
