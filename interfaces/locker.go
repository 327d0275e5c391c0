package interfaces

import "context"

// Locker is a short-lived, TTL-bounded mutual exclusion primitive over a named
// resource (e.g. one guild). If the holder crashes mid-section the TTL expiry — not an
// explicit unlock — is what prevents permanent deadlock. Callers must keep critical
// sections short relative to the TTL to avoid losing the lock mid-operation.
//
// Implemented by adapters myredis.Locker (SET NX PX + compare-and-delete release).
//
//go:generate moq -stub -out mock/locker.go -pkg mock . Locker
type Locker interface {
	// WithLock acquires the lock for the resource, executes fn and releases the lock in
	// a guaranteed-cleanup path regardless of fn's outcome.
	// Returns: fn's error unchanged when fn ran; lock_acquisition_timeout when the
	// resource stayed contested beyond the acquire budget; internal_server_error on
	// Redis failure during acquire.
	// Called from service.affinityManager for every affinity mutation, keyed guild:{id}.
	WithLock(ctx context.Context, resource string, fn func(ctx context.Context) error) error
}
