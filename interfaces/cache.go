package interfaces

import "context"

// Cache represents a TTL'd key-value store for one record type. Used by the affinity
// manager for AffinityRecord entries (key = guild id, TTL = affinity lifetime).
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue writes value in cache with the given TTL (ms).
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ReadValue returns the value for the given key.
	// Returns:
	// 1) (item, true, nil) when the key exists and unmarshals;
	// 2) (zero, false, nil) when the key is absent or expired;
	// 3) (zero, false, internal_server_error) when the storage read or unmarshal fails.
	ReadValue(ctx context.Context, key string) (T, bool, error)

	// DeleteValue deletes the value for the given key from the cache.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
