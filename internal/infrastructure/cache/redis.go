package cache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Cached cart-size indicator, refreshed by the background poll.
	KeyCartCount = "storefront:cart:count"
)

var TTLCartCount = 30 * time.Second

func CreateRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
