package myredis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"

// Test keys all carry the "coordtest" marker so cleanup cannot touch real data.
var testKeyPatterns = []string{
	"affinity_coordtest:*",
	"instance:coordtest-*",
	"guild_assignment:coordtest-*",
	"instance_guilds:coordtest-*",
	"lock:coordtest-*",
	"commands:coordtest-*",
}

func setupTestRedis(t *testing.T) (redis.UniversalClient, func()) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	flush := func() {
		for _, pattern := range testKeyPatterns {
			keys, err := client.Keys(context.Background(), pattern).Result()
			if err == nil && len(keys) > 0 {
				client.Del(context.Background(), keys...)
			}
		}
	}
	flush()

	cleanup := func() {
		flush()
		client.Close()
	}
	return client, cleanup
}

func marshalRecord(r domain.AffinityRecord) ([]byte, error) { return json.Marshal(r) }
func unmarshalRecord(b []byte) (domain.AffinityRecord, error) {
	var r domain.AffinityRecord
	err := json.Unmarshal(b, &r)
	return r, err
}

func newTestRecordCache(client redis.UniversalClient) *redisCache[domain.AffinityRecord] {
	return NewCache[domain.AffinityRecord](client, "affinity_coordtest", marshalRecord, unmarshalRecord)
}

func TestCache_WriteAndReadValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestRecordCache(client)
	record := domain.AffinityRecord{
		GuildID:     "g1",
		InstanceID:  "i1",
		ServiceType: "audio",
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
		UseCount:    3,
	}

	require.NoError(t, cache.WriteValue(ctx, "audio:g1", record, 60000))

	got, found, err := cache.ReadValue(ctx, "audio:g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, record.InstanceID, got.InstanceID)
	assert.Equal(t, record.UseCount, got.UseCount)
	assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
}

func TestCache_ReadValue_Missing(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestRecordCache(client)
	_, found, err := cache.ReadValue(ctx, "audio:nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_ReadValue_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, client.Set(ctx, "affinity_coordtest:bad", "not json", 0).Err())

	cache := newTestRecordCache(client)
	_, _, err := cache.ReadValue(ctx, "bad")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}

func TestCache_WriteValue_TTLExpires(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestRecordCache(client)
	require.NoError(t, cache.WriteValue(ctx, "audio:ttl", domain.AffinityRecord{GuildID: "g1"}, 50))

	time.Sleep(120 * time.Millisecond)

	_, found, err := cache.ReadValue(ctx, "audio:ttl")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_DeleteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestRecordCache(client)
	require.NoError(t, cache.WriteValue(ctx, "audio:del", domain.AffinityRecord{GuildID: "g1"}, 60000))
	require.NoError(t, cache.DeleteValue(ctx, "audio:del"))

	_, found, err := cache.ReadValue(ctx, "audio:del")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_WriteValue_ClosedClient(t *testing.T) {
	_, cleanup := setupTestRedis(t)
	defer cleanup()

	closedClient, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	closedClient.Close()

	cache := NewCache[domain.AffinityRecord](closedClient, "affinity_coordtest", marshalRecord, unmarshalRecord)
	err = cache.WriteValue(context.Background(), "x", domain.AffinityRecord{}, 60000)
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
