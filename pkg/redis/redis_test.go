package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hashid/pkg/redis"
)

func connect(t *testing.T) redis.Config {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}
	return redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
		DedupPrefix:    "hashid-test:" + uuid.NewString() + ":",
		DedupTTL:       time.Minute,
	}
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestNewDeduper_NilClient(t *testing.T) {
	t.Parallel()
	_, err := redis.NewDeduper(nil, "p:", 0)
	assert.ErrorIs(t, err, redis.ErrNilClient)
}

func TestDeduper(t *testing.T) {
	cfg := connect(t)
	ctx := context.Background()

	client, err := redis.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	dedup, err := redis.NewDeduperFromConfig(client, cfg)
	require.NoError(t, err)
	require.NoError(t, dedup.Ping(ctx))

	seen, err := dedup.Seen(ctx, "Q1nsJNndnZbJCUdpESyaQw")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = dedup.Seen(ctx, "Q1nsJNndnZbJCUdpESyaQw")
	require.NoError(t, err)
	assert.True(t, seen)

	ttl, err := client.TTL(ctx, cfg.DedupPrefix+"Q1nsJNndnZbJCUdpESyaQw").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, dedup.Forget(ctx, "Q1nsJNndnZbJCUdpESyaQw"))
	seen, err = dedup.Seen(ctx, "Q1nsJNndnZbJCUdpESyaQw")
	require.NoError(t, err)
	assert.False(t, seen)
}
