package health

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisChecker reports whether the gateway response cache is reachable.
type RedisChecker struct {
	client *redis.Client
}

func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Name() string {
	return "redis"
}

func (c *RedisChecker) Check(ctx context.Context) Result {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
