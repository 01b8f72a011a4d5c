package pagecache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "page:"

// Redis keeps fragments in a shared Redis instance so every replica serves
// the same cached pages. Cache trouble is logged and treated as a miss.
type Redis struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewRedis(client *redis.Client, logger *logrus.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func (c *Redis) Get(key string) ([]byte, bool) {
	val, err := c.client.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Page cache read failed")
		}
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(context.Background(), keyPrefix+key, value, ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Page cache write failed")
	}
}

func (c *Redis) Clear() {
	ctx := context.Background()
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.WithError(err).Warn("Page cache delete failed")
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.WithError(err).Warn("Page cache scan failed")
	}
}
