package interfaces

import (
	"context"

	"mycoordinator/domain"
)

// AffinityManager decides, records and migrates guild→instance bindings. All mutating
// writes go through Locker keyed on the guild; reads are lock-free/best-effort.
// "Affinity not found" is a (zero, false) return, never an error.
//
// Implemented by service.affinityManager. Consumed by service.correlator and by the
// embedding application's command issuers.
//
//go:generate moq -stub -out mock/affinity_manager.go -pkg mock . AffinityManager
type AffinityManager interface {
	// GetAffinity returns the bound instance id only if that instance is currently
	// healthy; otherwise ("", false, nil). Side effect: best-effort lastUsed refresh.
	// Sits on the hot path of every guild command; latency and hit/miss/error outcome
	// are recorded as metrics.
	GetAffinity(ctx context.Context, guildID, serviceType string) (string, bool, error)

	// SetAffinity writes the TTL'd AffinityRecord and upserts the GuildAssignment under
	// the guild lock. Returns the lock or registry error unchanged; retries are the
	// caller's decision.
	SetAffinity(ctx context.Context, guildID, instanceID, serviceType string, hasVoiceConnection bool) error

	// UpdateAffinityUsage bumps lastUsed/useCount without taking the lock. Best-effort:
	// failures are logged, never returned.
	UpdateAffinityUsage(ctx context.Context, guildID, serviceType string)

	// MarkVoiceConnection flips hasVoiceConnection on both the affinity record and the
	// guild assignment under the guild lock.
	MarkVoiceConnection(ctx context.Context, guildID, serviceType string, active bool) error

	// RemoveAffinity deletes the affinity record and the guild assignment under the
	// guild lock.
	RemoveAffinity(ctx context.Context, guildID, serviceType string) error

	// RouteCommand resolves the owning instance (existing affinity first; otherwise,
	// under preferred stickiness, the healthy instance with the fewest assigned guilds)
	// and publishes the command to that instance's stream.
	// Returns: (instanceID, true, nil) when routed; ("", false, nil) when no healthy
	// instance exists; ("", false, error) on substrate failure.
	RouteCommand(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (string, bool, error)

	// HandleInstanceFailure sweeps every guild assigned to the failed instance: the
	// binding is deliberately preserved when the guild has a live voice connection and
	// stickiness is strict (session expected to resume when the instance returns);
	// otherwise the affinity is released so the next command rebinds naturally.
	HandleInstanceFailure(ctx context.Context, failedInstanceID, serviceType string) error
}
