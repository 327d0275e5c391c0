package interfaces

import (
	"context"

	"mycoordinator/domain"
)

// Registry is the bookkeeping of live worker instances and guild→instance assignments.
// Backed by the shared Redis substrate (adapters myredis.Registry). Writes are
// last-write-wins at this layer; correctness under contention is the caller's
// responsibility (affinity mutations go through Locker).
//
// Lookups on missing keys return (zero, false, nil) or an empty slice, never an error.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// RegisterInstance upserts the instance record with the given heartbeat TTL (ms).
	// Also serves as the heartbeat: each call resets the TTL. When heartbeats stop the
	// record expires and the instance drops out of GetHealthyInstances.
	// Returns: nil on success; internal_server_error on marshal or Redis write failure.
	// Called from handlers.HTTPServer.RegisterInstance and from cmd/main at startup.
	RegisterInstance(ctx context.Context, instance domain.ServiceInstance, ttlMs int) error

	// GetInstance returns the instance record for (serviceType, instanceID).
	// Returns: (instance, true, nil) when present; (zero, false, nil) when absent or
	// expired; (zero, false, error) on Redis or unmarshal failure.
	// Called from service.affinityManager.GetAffinity when validating the bound instance.
	GetInstance(ctx context.Context, serviceType, instanceID string) (domain.ServiceInstance, bool, error)

	// GetHealthyInstances returns all non-expired instances of the service type whose
	// status is healthy, with AssignedGuilds filled from the instance guild sets.
	// Returns: (instances, nil) — possibly empty, never nil error for the empty case;
	// (nil, error) on Redis failure.
	// Called from service.affinityManager.RouteCommand for least-loaded selection and
	// from handlers.HTTPServer.GetInstances.
	GetHealthyInstances(ctx context.Context, serviceType string) ([]domain.ServiceInstance, error)

	// UnregisterInstance deletes the instance record. The instance guild set is kept:
	// assignments are released (or deliberately preserved) by
	// AffinityManager.HandleInstanceFailure, not by deregistration.
	// Returns: nil on success (including when absent); internal_server_error on Redis failure.
	// Called from handlers.HTTPServer.UnregisterInstance and cmd/main on shutdown.
	UnregisterInstance(ctx context.Context, serviceType, instanceID string) error

	// GetGuildAssignment returns the assignment record for the guild.
	// Returns: (assignment, true, nil) when present; (zero, false, nil) when absent;
	// (zero, false, error) on Redis or unmarshal failure.
	GetGuildAssignment(ctx context.Context, guildID string) (domain.GuildAssignment, bool, error)

	// AssignGuild upserts the guild assignment and adds the guild to the instance's
	// guild set. When the guild was previously assigned to a different instance it is
	// removed from that instance's set first.
	// Returns: nil on success; internal_server_error on Redis failure.
	// Called from service.affinityManager.SetAffinity under the guild lock.
	AssignGuild(ctx context.Context, assignment domain.GuildAssignment) error

	// UnassignGuild deletes the guild assignment and removes the guild from its
	// instance's guild set. Missing assignment is a no-op, not an error.
	// Called from service.affinityManager.RemoveAffinity under the guild lock.
	UnassignGuild(ctx context.Context, guildID string) error

	// GetInstanceGuilds returns the guild ids currently assigned to the instance.
	// Returns: (ids, nil) — possibly empty; (nil, error) on Redis failure.
	// Called from service.affinityManager.HandleInstanceFailure to sweep a dead instance.
	GetInstanceGuilds(ctx context.Context, instanceID string) ([]string, error)

	// UpdateGuildActivity bumps LastActivity on the guild assignment. Missing
	// assignment is a no-op.
	// Called from service.affinityManager.UpdateAffinityUsage (best-effort).
	UpdateGuildActivity(ctx context.Context, guildID string) error
}
