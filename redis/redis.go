package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// DenyToken blacklists a bearer token until its natural expiry. JWTs are
// stateless; this is what makes logout actually mean something.
func DenyToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "denylist:"+token, "1", ttl).Err()
}

// TokenDenied reports whether a token was revoked via logout.
func TokenDenied(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "denylist:"+token).Result()
	return err == nil && n > 0
}
