// Package testutils provides test helpers, including an in-memory Redis
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Samer-Gassouma/aeon-generator/internal/redis"
)

// CreateTestRedisClient starts a miniredis instance and returns a client
// connected to it plus a cleanup function.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr.Close
}

// CreateTestRedisServer starts a miniredis instance and exposes it directly
// so tests can fast-forward TTLs or inspect keys.
func CreateTestRedisServer(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return mr, client
}
