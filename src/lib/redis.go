package lib

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

var ErrLockHeld = errors.New("lock is held by another request")

// releaseLock deletes KEYS[1] only while it still holds ARGV[1].
const releaseLock = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// GetRedisClient returns nil when REDIS_HOST is not configured.
func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		return nil
	}
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// AcquireLock takes a SETNX lock on key holding value. Without Redis it always
// succeeds. The returned func releases the lock unless it expired and was
// taken by another holder, so value should be unique per caller.
func AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (func(), error) {
	rd := GetRedisClient()
	if rd == nil {
		return func() {}, nil
	}
	ok, err := rd.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		log.Printf("[redis] Error acquiring lock %s: %s\n", key, err.Error())
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return func() {
		if err := rd.Eval(context.Background(), releaseLock, []string{key}, value).Err(); err != nil {
			log.Printf("[redis] Error releasing lock %s: %s\n", key, err.Error())
		}
	}, nil
}
