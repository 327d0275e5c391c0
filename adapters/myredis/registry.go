package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"
	"mycoordinator/service"

	"github.com/go-redis/redis/v8"
)

// registry implements interfaces.Registry on the shared Redis substrate.
// Instance records live under instance:{serviceType}:{instanceId} with the heartbeat
// TTL; guild assignments under guild_assignment:{guildId} without TTL; the set of
// guilds per instance under instance_guilds:{instanceId}. All writes are plain
// last-write-wins SETs — contention correctness belongs to the callers holding the
// guild lock, not to this layer.
type registry struct {
	client redis.UniversalClient
	clock  interfaces.TimeProvider
}

// NewRegistry creates a Redis-backed service registry. Panics on nil client or clock.
func NewRegistry(client redis.UniversalClient, clock interfaces.TimeProvider) *registry {
	return &registry{
		client: helpers.NilPanic(client, "adapters.myredis.registry.go: client is required"),
		clock:  helpers.NilPanic(clock, "adapters.myredis.registry.go: clock is required"),
	}
}

func (r *registry) RegisterInstance(ctx context.Context, instance domain.ServiceInstance, ttlMs int) error {
	bytes, err := json.Marshal(instance)
	if err != nil {
		return service.NewInternalServerError("Redis marshal instance error", fmt.Errorf("can't marshal instance '%s', err: %w", instance.InstanceID, err))
	}

	key := domain.InstanceKey(instance.ServiceType, instance.InstanceID)
	err = r.client.Set(ctx, key, bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write instance error", fmt.Errorf("can't write instance (key='%s'), err: %w", key, err))
	}

	return nil
}

func (r *registry) GetInstance(ctx context.Context, serviceType, instanceID string) (domain.ServiceInstance, bool, error) {
	key := domain.InstanceKey(serviceType, instanceID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ServiceInstance{}, false, nil
		}
		return domain.ServiceInstance{}, false, service.NewInternalServerError("Redis read instance error", fmt.Errorf("can't read instance (key='%s'), err: %w", key, err))
	}

	var instance domain.ServiceInstance
	if err := json.Unmarshal(data, &instance); err != nil {
		return domain.ServiceInstance{}, false, service.NewInternalServerError("Redis unmarshal instance error", fmt.Errorf("can't unmarshal instance (key='%s'), err: %w", key, err))
	}

	return instance, true, nil
}

// GetHealthyInstances lists all instance keys under the service type prefix then
// fetches their values, keeping only records with status healthy. Entries that fail to
// read or unmarshal are skipped (they may have expired between KEYS and GET).
func (r *registry) GetHealthyInstances(ctx context.Context, serviceType string) ([]domain.ServiceInstance, error) {
	fullKeys, err := r.client.Keys(ctx, domain.InstanceKeyPrefix(serviceType)+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get instance keys error, err: %w", err))
	}

	instances := make([]domain.ServiceInstance, 0, len(fullKeys))
	for _, key := range fullKeys {
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}

		var instance domain.ServiceInstance
		if err := json.Unmarshal(data, &instance); err != nil {
			continue
		}
		if instance.Status != domain.StatusHealthy {
			continue
		}

		guilds, err := r.GetInstanceGuilds(ctx, instance.InstanceID)
		if err == nil {
			instance.AssignedGuilds = guilds
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

func (r *registry) UnregisterInstance(ctx context.Context, serviceType, instanceID string) error {
	key := domain.InstanceKey(serviceType, instanceID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return service.NewInternalServerError("Redis delete instance error", fmt.Errorf("can't delete instance (key='%s'), err: %w", key, err))
	}
	return nil
}

func (r *registry) GetGuildAssignment(ctx context.Context, guildID string) (domain.GuildAssignment, bool, error) {
	key := domain.GuildAssignmentKey(guildID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.GuildAssignment{}, false, nil
		}
		return domain.GuildAssignment{}, false, service.NewInternalServerError("Redis read assignment error", fmt.Errorf("can't read assignment (key='%s'), err: %w", key, err))
	}

	var assignment domain.GuildAssignment
	if err := json.Unmarshal(data, &assignment); err != nil {
		return domain.GuildAssignment{}, false, service.NewInternalServerError("Redis unmarshal assignment error", fmt.Errorf("can't unmarshal assignment (key='%s'), err: %w", key, err))
	}

	return assignment, true, nil
}

func (r *registry) AssignGuild(ctx context.Context, assignment domain.GuildAssignment) error {
	// Reassignment moves the guild between instance guild sets.
	previous, found, err := r.GetGuildAssignment(ctx, assignment.GuildID)
	if err != nil {
		return err
	}
	if found && previous.InstanceID != assignment.InstanceID {
		if err := r.client.SRem(ctx, domain.InstanceGuildsKey(previous.InstanceID), assignment.GuildID).Err(); err != nil {
			return service.NewInternalServerError("Redis unassign previous instance error", fmt.Errorf("can't remove guild '%s' from instance '%s' set, err: %w", assignment.GuildID, previous.InstanceID, err))
		}
	}

	bytes, err := json.Marshal(assignment)
	if err != nil {
		return service.NewInternalServerError("Redis marshal assignment error", fmt.Errorf("can't marshal assignment for guild '%s', err: %w", assignment.GuildID, err))
	}

	key := domain.GuildAssignmentKey(assignment.GuildID)
	if err := r.client.Set(ctx, key, bytes, 0).Err(); err != nil {
		return service.NewInternalServerError("Redis write assignment error", fmt.Errorf("can't write assignment (key='%s'), err: %w", key, err))
	}
	if err := r.client.SAdd(ctx, domain.InstanceGuildsKey(assignment.InstanceID), assignment.GuildID).Err(); err != nil {
		return service.NewInternalServerError("Redis add guild to instance set error", fmt.Errorf("can't add guild '%s' to instance '%s' set, err: %w", assignment.GuildID, assignment.InstanceID, err))
	}

	return nil
}

func (r *registry) UnassignGuild(ctx context.Context, guildID string) error {
	assignment, found, err := r.GetGuildAssignment(ctx, guildID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if err := r.client.Del(ctx, domain.GuildAssignmentKey(guildID)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete assignment error", fmt.Errorf("can't delete assignment for guild '%s', err: %w", guildID, err))
	}
	if err := r.client.SRem(ctx, domain.InstanceGuildsKey(assignment.InstanceID), guildID).Err(); err != nil {
		return service.NewInternalServerError("Redis remove guild from instance set error", fmt.Errorf("can't remove guild '%s' from instance '%s' set, err: %w", guildID, assignment.InstanceID, err))
	}

	return nil
}

func (r *registry) GetInstanceGuilds(ctx context.Context, instanceID string) ([]string, error) {
	guilds, err := r.client.SMembers(ctx, domain.InstanceGuildsKey(instanceID)).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read instance guilds error", fmt.Errorf("can't read guild set of instance '%s', err: %w", instanceID, err))
	}
	return guilds, nil
}

func (r *registry) UpdateGuildActivity(ctx context.Context, guildID string) error {
	assignment, found, err := r.GetGuildAssignment(ctx, guildID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	assignment.LastActivity = r.clock.Now()
	bytes, err := json.Marshal(assignment)
	if err != nil {
		return service.NewInternalServerError("Redis marshal assignment error", fmt.Errorf("can't marshal assignment for guild '%s', err: %w", guildID, err))
	}
	if err := r.client.Set(ctx, domain.GuildAssignmentKey(guildID), bytes, 0).Err(); err != nil {
		return service.NewInternalServerError("Redis write assignment error", fmt.Errorf("can't write assignment for guild '%s', err: %w", guildID, err))
	}

	return nil
}
