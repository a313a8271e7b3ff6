package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores depend on an interface that
// both real connections and redismock clients satisfy
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil
