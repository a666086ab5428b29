package config

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the collaborator-response cache. Redis is optional:
// when no address is configured, (nil, nil) is returned and callers fall
// back to a no-op cache.
func InitRedis(ctx context.Context) (*redis.Client, error) {
	val := os.Getenv("REDIS_ADDR")
	if val == "" {
		val = os.Getenv("REDIS_URL")
	}
	if val == "" {
		return nil, nil
	}

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
