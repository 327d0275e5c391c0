package myredis

import (
	"context"
	"fmt"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the lock key only when it still holds this holder's token, so
// a lock lost to TTL expiry and re-acquired by someone else is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// LockConfig holds the locker tuning: TTL of a held lock, the total acquire budget and
// the delay between acquire attempts. Callers must keep critical sections short
// relative to TTL.
type LockConfig struct {
	TTL            time.Duration
	AcquireTimeout time.Duration
	RetryDelay     time.Duration
}

// locker implements interfaces.Locker with a Redis SET NX PX lock per resource.
// The holder token is a fresh uuid per acquisition; release is a compare-and-delete
// Lua script. A crashed holder never deadlocks the resource: the TTL expires it.
type locker struct {
	client redis.UniversalClient
	config LockConfig
	logger log.Logger
}

// NewLocker creates the Redis-backed distributed locker. Panics on nil client or logger.
//
// Parameters: client — shared redis client; config — lock TTL, acquire budget, retry delay; logger — release failures are logged, not returned.
//
// Returns: *locker implementing interfaces.Locker.
//
// Called from cmd/main when building the coordinator.
func NewLocker(client redis.UniversalClient, config LockConfig, logger log.Logger) *locker {
	return &locker{
		client: helpers.NilPanic(client, "adapters.myredis.lock.go: client is required"),
		config: config,
		logger: log.With(helpers.NilPanic(logger, "adapters.myredis.lock.go: logger is required"), "component", "locker"),
	}
}

// WithLock acquires lock:{resource}, executes fn and releases in a guaranteed-cleanup
// path regardless of fn's outcome. Acquisition retries every RetryDelay until
// AcquireTimeout elapses, then fails with lock_acquisition_timeout.
//
// Returns: fn's error unchanged when fn ran; lock_acquisition_timeout when contested
// beyond the budget; internal_server_error on Redis failure during acquire; ctx.Err()
// when the context ends while waiting.
func (l *locker) WithLock(ctx context.Context, resource string, fn func(ctx context.Context) error) error {
	key := domain.LockKey(resource)
	token := uuid.NewString()

	if err := l.acquire(ctx, key, token); err != nil {
		return err
	}
	defer l.release(key, token)

	return fn(ctx)
}

func (l *locker) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(l.config.AcquireTimeout)
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.config.TTL).Result()
		if err != nil {
			return service.NewInternalServerError("Redis lock acquire error", fmt.Errorf("can't acquire lock (key='%s'), err: %w", key, err))
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return service.NewLockAcquisitionTimeoutError(fmt.Sprintf("lock '%s' contested beyond %s", key, l.config.AcquireTimeout), nil)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.config.RetryDelay):
		}
	}
}

// release runs on a fresh background context: the critical section's ctx may already
// be cancelled, and an unreleased lock would otherwise block the resource until TTL.
func (l *locker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), l.config.TTL)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		_ = level.Warn(l.logger).Log("msg", "lock release failed, TTL will expire it", "key", key, "err", err)
	}
}
