// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance. endpoint is either
// host:port or a redis:// URL; a URL's own settings win over opts.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		redisOpts, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
		}
		if redisOpts.PoolSize == 0 {
			redisOpts.PoolSize = opts.PoolSize
		}
		return redis.NewClient(redisOpts), nil
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}
