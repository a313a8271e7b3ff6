package versioned

import (
	"context"

	"github.com/KirkDiggler/delver-sim/internal/errors"
	redisclient "github.com/KirkDiggler/delver-sim/internal/redis"
)

// DefaultKeyPrefix namespaces every key the Redis backend writes
const DefaultKeyPrefix = "delver:"

// RedisConfig contains configuration for the Redis backend
type RedisConfig struct {
	Client    redisclient.Client
	KeyPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// RedisBackend keeps each entity's revisions in a Redis list, oldest first
type RedisBackend struct {
	client redisclient.Client
	prefix string
}

// NewRedis creates a Redis backend
func NewRedis(cfg *RedisConfig) (*RedisBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisBackend{client: cfg.Client, prefix: prefix}, nil
}

// Key returns the list key for an entity
func (b *RedisBackend) Key(table, id string) string {
	return b.prefix + table + ":" + id
}

// Append implements Backend
func (b *RedisBackend) Append(ctx context.Context, table, id string, data []byte) (int, error) {
	n, err := b.client.RPush(ctx, b.Key(table, id), data).Result()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append revision")
	}
	return int(n), nil
}

// Latest implements Backend
func (b *RedisBackend) Latest(ctx context.Context, table, id string) ([]byte, int, error) {
	key := b.Key(table, id)

	data, err := b.client.LIndex(ctx, key, -1).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, 0, errors.NotFoundf("%s %s has no revisions", table, id)
		}
		return nil, 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read latest revision")
	}

	// revisions are only ever appended, so the count read after the tail
	// is at least the tail's version
	n, err := b.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to count revisions")
	}
	return data, int(n), nil
}

// Versions implements Backend
func (b *RedisBackend) Versions(ctx context.Context, table, id string) (int, error) {
	n, err := b.client.LLen(ctx, b.Key(table, id)).Result()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to count revisions")
	}
	return int(n), nil
}
