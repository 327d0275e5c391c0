package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mycoordinator/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("SERVICE_PORT_HTTP", "8080")
	t.Setenv("SERVICE_TYPE", "audio")
	t.Setenv("INSTANCE_ID", "audio-1")
	t.Setenv("CONFIG_PATH", "")
}

func TestLoadConfig_RedisAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP")
}

func TestLoadConfig_ServicePortInvalid(t *testing.T) {
	setRequiredEnv(t)

	for _, port := range []string{"abc", "0", "-1", "70000"} {
		t.Setenv("SERVICE_PORT_HTTP", port)
		cfg, err := LoadConfig()
		require.Error(t, err, "port %q must be rejected", port)
		assert.Nil(t, cfg)
	}
}

func TestLoadConfig_ServiceTypeRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_TYPE", " ")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_TYPE is required")
}

func TestLoadConfig_InstanceIDRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INSTANCE_ID", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "INSTANCE_ID is required")
}

func TestLoadConfig_DefaultsWithoutConfigPath(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "audio", cfg.ServiceType)
	assert.Equal(t, "audio-1", cfg.InstanceID)

	assert.Equal(t, domain.StickinessPreferred, cfg.Affinity.Stickiness)
	assert.Equal(t, defaultAffinityTTLMs, cfg.Affinity.TTLMs)
	assert.Equal(t, 30*time.Second, cfg.Lock.TTL)
	assert.Equal(t, 5*time.Second, cfg.Lock.AcquireTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Lock.RetryDelay)
	assert.Equal(t, int64(10), cfg.Stream.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Stream.BlockDuration)
	assert.Equal(t, 2*time.Second, cfg.Correlator.ResponseTimeout)
	assert.Equal(t, defaultHeartbeatTTLMs, cfg.HeartbeatTTLMs)
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
}

func TestLoadConfig_YAMLTunables(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "coordinator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
affinity:
  stickiness: strict
  ttl_ms: 600000
lock:
  ttl_ms: 10000
  acquire_timeout_ms: 2000
  retry_delay_ms: 25
stream:
  batch_size: 50
  block_ms: 1000
correlator:
  response_timeout_ms: 750
registry:
  heartbeat_ttl_ms: 9000
  heartbeat_interval_ms: 3000
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, domain.StickinessStrict, cfg.Affinity.Stickiness)
	assert.Equal(t, 600000, cfg.Affinity.TTLMs)
	assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	assert.Equal(t, 2*time.Second, cfg.Lock.AcquireTimeout)
	assert.Equal(t, 25*time.Millisecond, cfg.Lock.RetryDelay)
	assert.Equal(t, int64(50), cfg.Stream.BatchSize)
	assert.Equal(t, time.Second, cfg.Stream.BlockDuration)
	assert.Equal(t, 750*time.Millisecond, cfg.Correlator.ResponseTimeout)
	assert.Equal(t, 9000, cfg.HeartbeatTTLMs)
	assert.Equal(t, 3*time.Second, cfg.HeartbeatInterval)
}

func TestLoadConfig_PartialYAMLKeepsDefaults(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "coordinator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("affinity:\n  stickiness: strict\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.StickinessStrict, cfg.Affinity.Stickiness)
	assert.Equal(t, defaultAffinityTTLMs, cfg.Affinity.TTLMs)
	assert.Equal(t, 30*time.Second, cfg.Lock.TTL)
}

func TestLoadConfig_InvalidStickiness(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "coordinator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("affinity:\n  stickiness: clingy\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "stickiness")
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "coordinator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("affinity: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
