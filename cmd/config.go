package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mycoordinator/adapters/myredis"
	"mycoordinator/domain"
	"mycoordinator/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envRedisAddr   = "REDIS_ADDR"
	envHTTPPort    = "SERVICE_PORT_HTTP"
	envServiceType = "SERVICE_TYPE"
	envInstanceID  = "INSTANCE_ID"
	envConfigPath  = "CONFIG_PATH"
)

// Tunable defaults, applied when CONFIG_PATH is unset or a field is omitted.
const (
	defaultAffinityTTLMs       = 3600000
	defaultLockTTLMs           = 30000
	defaultLockAcquireMs       = 5000
	defaultLockRetryMs         = 50
	defaultStreamBatchSize     = 10
	defaultStreamBlockMs       = 5000
	defaultResponseTimeoutMs   = 2000
	defaultHeartbeatTTLMs      = 15000
	defaultHeartbeatIntervalMs = 5000
)

// Config holds the full coordinator configuration. Identity and wiring come from
// environment variables (REDIS_ADDR, SERVICE_PORT_HTTP, SERVICE_TYPE, INSTANCE_ID);
// tunables come from the optional YAML file at CONFIG_PATH.
type Config struct {
	Redis       myredis.RedisConfig
	HTTPPort    int
	ServiceType string
	InstanceID  string

	Affinity          service.AffinityConfig
	Lock              myredis.LockConfig
	Stream            myredis.StreamConfig
	Correlator        service.CorrelatorConfig
	HeartbeatTTLMs    int
	HeartbeatInterval time.Duration
}

// yamlConfig is the root struct for YAML unmarshalling. All durations are milliseconds;
// zero values fall back to the defaults above.
type yamlConfig struct {
	Affinity   yamlAffinity   `yaml:"affinity"`
	Lock       yamlLock       `yaml:"lock"`
	Stream     yamlStream     `yaml:"stream"`
	Correlator yamlCorrelator `yaml:"correlator"`
	Registry   yamlRegistry   `yaml:"registry"`
}

// yamlAffinity holds the stickiness policy (strict|preferred) and affinity record TTL.
type yamlAffinity struct {
	Stickiness string `yaml:"stickiness"`
	TTLMs      int    `yaml:"ttl_ms"`
}

// yamlLock holds the distributed lock TTL, acquire budget and retry delay.
type yamlLock struct {
	TTLMs            int `yaml:"ttl_ms"`
	AcquireTimeoutMs int `yaml:"acquire_timeout_ms"`
	RetryDelayMs     int `yaml:"retry_delay_ms"`
}

// yamlStream holds the consumer batch size and read block duration.
type yamlStream struct {
	BatchSize int64 `yaml:"batch_size"`
	BlockMs   int   `yaml:"block_ms"`
}

// yamlCorrelator holds the per-request response wait budget.
type yamlCorrelator struct {
	ResponseTimeoutMs int `yaml:"response_timeout_ms"`
}

// yamlRegistry holds the instance heartbeat TTL and the re-heartbeat interval.
type yamlRegistry struct {
	HeartbeatTTLMs      int `yaml:"heartbeat_ttl_ms"`
	HeartbeatIntervalMs int `yaml:"heartbeat_interval_ms"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds coordinator config from environment variables and the optional
// YAML file at CONFIG_PATH.
//
// Returns: (*Config, nil) on success; (nil, error) on missing/invalid REDIS_ADDR,
// SERVICE_PORT_HTTP, SERVICE_TYPE or INSTANCE_ID, on YAML load/parse error, or on an
// unknown stickiness value.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	redisAddr := os.Getenv(envRedisAddr)
	if redisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}

	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	serviceType := strings.TrimSpace(os.Getenv(envServiceType))
	if serviceType == "" {
		return nil, fmt.Errorf("%s is required", envServiceType)
	}

	instanceID := strings.TrimSpace(os.Getenv(envInstanceID))
	if instanceID == "" {
		return nil, fmt.Errorf("%s is required", envInstanceID)
	}

	raw := &yamlConfig{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, absErr := filepath.Abs(configPath)
			if absErr != nil {
				return nil, absErr
			}
			configPath = abs
		}
		raw, err = loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	stickiness := domain.StickinessPreferred
	switch raw.Affinity.Stickiness {
	case "":
	case string(domain.StickinessStrict):
		stickiness = domain.StickinessStrict
	case string(domain.StickinessPreferred):
		stickiness = domain.StickinessPreferred
	default:
		return nil, fmt.Errorf("affinity.stickiness must be strict or preferred, got %q", raw.Affinity.Stickiness)
	}

	return &Config{
		Redis:       myredis.RedisConfig{Addr: redisAddr},
		HTTPPort:    httpPort,
		ServiceType: serviceType,
		InstanceID:  instanceID,
		Affinity: service.AffinityConfig{
			Stickiness: stickiness,
			TTLMs:      intOrDefault(raw.Affinity.TTLMs, defaultAffinityTTLMs),
		},
		Lock: myredis.LockConfig{
			TTL:            msOrDefault(raw.Lock.TTLMs, defaultLockTTLMs),
			AcquireTimeout: msOrDefault(raw.Lock.AcquireTimeoutMs, defaultLockAcquireMs),
			RetryDelay:     msOrDefault(raw.Lock.RetryDelayMs, defaultLockRetryMs),
		},
		Stream: myredis.StreamConfig{
			BatchSize:     int64OrDefault(raw.Stream.BatchSize, defaultStreamBatchSize),
			BlockDuration: msOrDefault(raw.Stream.BlockMs, defaultStreamBlockMs),
		},
		Correlator: service.CorrelatorConfig{
			ResponseTimeout: msOrDefault(raw.Correlator.ResponseTimeoutMs, defaultResponseTimeoutMs),
		},
		HeartbeatTTLMs:    intOrDefault(raw.Registry.HeartbeatTTLMs, defaultHeartbeatTTLMs),
		HeartbeatInterval: msOrDefault(raw.Registry.HeartbeatIntervalMs, defaultHeartbeatIntervalMs),
	}, nil
}

func intOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func int64OrDefault(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}

func msOrDefault(ms, defMs int) time.Duration {
	return time.Duration(intOrDefault(ms, defMs)) * time.Millisecond
}
