package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mycoordinator/adapters/myredis"
	"mycoordinator/domain"
	"mycoordinator/handlers"
	"mycoordinator/interfaces"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyCoordinator service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"service_type", config.ServiceType,
		"instance_id", config.InstanceID,
		"stickiness", config.Affinity.Stickiness,
	)

	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })

	promRegistry := prometheus.NewRegistry()
	metrics := service.NewMetrics(promRegistry)

	// Connect to Redis and build the substrate adapters
	var (
		registry    interfaces.Registry
		locker      interfaces.Locker
		commandBus  interfaces.CommandBus
		responseBus interfaces.ResponseBus
		records     interfaces.Cache[domain.AffinityRecord]
	)
	{
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(r domain.AffinityRecord) ([]byte, error) { return json.Marshal(r) }
		unmarshal := func(b []byte) (domain.AffinityRecord, error) {
			var r domain.AffinityRecord
			err := json.Unmarshal(b, &r)
			return r, err
		}
		records = myredis.NewCache[domain.AffinityRecord](redisClient, "affinity", marshal, unmarshal)
		registry = myredis.NewRegistry(redisClient, clock)
		locker = myredis.NewLocker(redisClient, config.Lock, logger)

		streamBus := myredis.NewStreamBus(redisClient, config.Stream, logger)
		commandBus = streamBus
		responseBus = streamBus
	}

	affinity := service.NewAffinityManager(records, registry, locker, commandBus, metrics, clock, config.Affinity, logger)
	correlator := service.NewCorrelator(affinity, responseBus, config.Correlator, logger)

	// Register this instance and start the command processor
	consumerName := config.InstanceID + "-" + uuid.NewString()
	processor := service.NewCommandProcessor(commandBus, responseBus, metrics, clock, config.ServiceType, config.InstanceID, consumerName, logger)

	// Guild-scoped handlers run through the guild mutex so commands for one guild
	// execute in arrival order. The embedding application registers its own handlers
	// the same way; ping is the built-in liveness probe.
	guildMutex := service.NewGuildMutex()
	processor.RegisterHandler("ping", func(ctx context.Context, cmd domain.StreamCommand) (json.RawMessage, error) {
		var out json.RawMessage
		err := guildMutex.Run(ctx, cmd.GuildID, func(ctx context.Context) error {
			out = json.RawMessage(fmt.Sprintf(`{"instance_id":%q}`, config.InstanceID))
			return nil
		})
		return out, err
	})

	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	self := domain.ServiceInstance{
		InstanceID:    config.InstanceID,
		ServiceType:   config.ServiceType,
		Status:        domain.StatusHealthy,
		LastHeartbeat: clock.Now(),
	}
	if err := registry.RegisterInstance(startCtx, self, config.HeartbeatTTLMs); err != nil {
		startCancel()
		level.Error(logger).Log("msg", "Failed to register instance", "err", err)
		os.Exit(1)
	}
	if err := processor.Initialize(startCtx); err != nil {
		startCancel()
		level.Error(logger).Log("msg", "Failed to initialize command processor", "err", err)
		os.Exit(1)
	}
	startCancel()

	// Heartbeat loop keeps the registry record alive until shutdown
	heartbeatCtx, heartbeatCancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(config.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-heartbeatCtx.Done():
				return
			case <-ticker.C:
				beat := self
				beat.LastHeartbeat = clock.Now()
				if err := registry.RegisterInstance(heartbeatCtx, beat, config.HeartbeatTTLMs); err != nil {
					level.Warn(logger).Log("msg", "Heartbeat failed", "err", err)
				}
			}
		}
	}()

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		httpServer := handlers.NewHTTPServer(registry, correlator, clock, logger)
		handlers.RegisterRoutes(e, httpServer, promRegistry)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	heartbeatCancel()
	processor.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := registry.UnregisterInstance(shutdownCtx, config.ServiceType, config.InstanceID); err != nil {
		level.Warn(logger).Log("msg", "Failed to unregister instance", "err", err)
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
