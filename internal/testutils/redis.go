// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/delver-sim/internal/redis"
)

// CreateTestRedisServer creates an in-memory Redis client and returns the
// server too, so tests can inspect keys or simulate outages
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}
