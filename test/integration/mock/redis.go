package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis starts a process-wide miniredis server on first call and returns a
// client bound to it. The alias cache writes negative entries with long TTLs,
// so scenarios must flush it via ClearRedis rather than rely on expiry.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis flushes every key. Called before each scenario.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
