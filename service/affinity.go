package service

import (
	"context"
	"fmt"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// AffinityConfig holds the affinity manager tuning: the stickiness policy and the TTL
// (ms) of affinity records in the shared store.
type AffinityConfig struct {
	Stickiness domain.Stickiness
	TTLMs      int
}

// affinityManager implements interfaces.AffinityManager. The TTL'd AffinityRecord in
// the records cache is the authoritative copy for routing; the GuildAssignment in the
// registry is bookkeeping read by failure sweeps. Both are written under one guild
// lock so they cannot drift apart except across a crash, which the next lock-guarded
// mutation repairs. Reads are lock-free.
type affinityManager struct {
	records  interfaces.Cache[domain.AffinityRecord]
	registry interfaces.Registry
	locker   interfaces.Locker
	bus      interfaces.CommandBus
	metrics  *Metrics
	clock    interfaces.TimeProvider
	config   AffinityConfig
	logger   log.Logger
}

// NewAffinityManager creates the session affinity manager. Panics on nil dependency.
//
// Parameters: records — TTL'd AffinityRecord cache (prefix "affinity"); registry —
// instance/assignment bookkeeping; locker — guild-keyed distributed lock; bus —
// command publisher; metrics — instrumentation sink; clock — time source; config —
// stickiness policy and record TTL; logger.
//
// Returns: interfaces.AffinityManager (*affinityManager).
//
// Called from cmd/main when building the coordinator.
func NewAffinityManager(
	records interfaces.Cache[domain.AffinityRecord],
	registry interfaces.Registry,
	locker interfaces.Locker,
	bus interfaces.CommandBus,
	metrics *Metrics,
	clock interfaces.TimeProvider,
	config AffinityConfig,
	logger log.Logger,
) interfaces.AffinityManager {
	return &affinityManager{
		records:  helpers.NilPanic(records, "service.affinity.go: records is required"),
		registry: helpers.NilPanic(registry, "service.affinity.go: registry is required"),
		locker:   helpers.NilPanic(locker, "service.affinity.go: locker is required"),
		bus:      helpers.NilPanic(bus, "service.affinity.go: bus is required"),
		metrics:  helpers.NilPanic(metrics, "service.affinity.go: metrics is required"),
		clock:    helpers.NilPanic(clock, "service.affinity.go: clock is required"),
		config:   config,
		logger:   log.With(helpers.NilPanic(logger, "service.affinity.go: logger is required"), "component", "affinity_manager"),
	}
}

// recordKey is the cache key of a guild's affinity record; the cache carries the
// "affinity" prefix, so the full key is affinity:{serviceType}:{guildId}.
func recordKey(serviceType, guildID string) string {
	return serviceType + ":" + guildID
}

// GetAffinity returns the bound instance id only when the binding exists and the bound
// instance is currently healthy. Sits on the hot path of every guild command: latency
// and hit/miss/error outcome are recorded. A hit refreshes lastUsed best-effort.
func (m *affinityManager) GetAffinity(ctx context.Context, guildID, serviceType string) (string, bool, error) {
	start := time.Now()
	defer func() { m.metrics.RecordAffinityLookup(time.Since(start)) }()

	record, found, err := m.records.ReadValue(ctx, recordKey(serviceType, guildID))
	if err != nil {
		m.metrics.RecordAffinityOperation("get", "error", false)
		return "", false, err
	}
	if !found {
		m.metrics.RecordAffinityOperation("get", "miss", false)
		return "", false, nil
	}

	instance, ok, err := m.registry.GetInstance(ctx, serviceType, record.InstanceID)
	if err != nil {
		m.metrics.RecordAffinityOperation("get", "error", true)
		return "", false, err
	}
	if !ok || instance.Status != domain.StatusHealthy {
		m.metrics.RecordAffinityOperation("get", "miss", true)
		return "", false, nil
	}

	m.UpdateAffinityUsage(ctx, guildID, serviceType)
	m.metrics.RecordAffinityOperation("get", "hit", true)
	return record.InstanceID, true, nil
}

// SetAffinity writes the TTL'd affinity record and upserts the guild assignment under
// the guild lock. CreatedAt and UseCount of an existing record survive the overwrite.
// Lock and registry errors are returned unchanged; retries are the caller's decision.
func (m *affinityManager) SetAffinity(ctx context.Context, guildID, instanceID, serviceType string, hasVoiceConnection bool) error {
	err := m.locker.WithLock(ctx, domain.GuildLockResource(guildID), func(ctx context.Context) error {
		now := m.clock.Now()

		record := domain.AffinityRecord{
			GuildID:            guildID,
			InstanceID:         instanceID,
			ServiceType:        serviceType,
			HasVoiceConnection: hasVoiceConnection,
			CreatedAt:          now,
			LastUsed:           now,
		}
		if existing, found, err := m.records.ReadValue(ctx, recordKey(serviceType, guildID)); err == nil && found {
			record.CreatedAt = existing.CreatedAt
			record.UseCount = existing.UseCount
		}
		if err := m.records.WriteValue(ctx, recordKey(serviceType, guildID), record, m.config.TTLMs); err != nil {
			return err
		}

		return m.registry.AssignGuild(ctx, domain.GuildAssignment{
			GuildID:            guildID,
			InstanceID:         instanceID,
			ServiceType:        serviceType,
			AssignedAt:         now,
			LastActivity:       now,
			HasVoiceConnection: hasVoiceConnection,
		})
	})

	m.recordMutation("set", err)
	return err
}

// UpdateAffinityUsage bumps lastUsed/useCount and the assignment's activity stamp
// without taking the lock. Best-effort: a lost bump under a concurrent write is
// acceptable, failures are logged and never returned.
func (m *affinityManager) UpdateAffinityUsage(ctx context.Context, guildID, serviceType string) {
	record, found, err := m.records.ReadValue(ctx, recordKey(serviceType, guildID))
	if err != nil || !found {
		if err != nil {
			_ = level.Debug(m.logger).Log("msg", "usage bump read failed", "guild_id", guildID, "err", err)
		}
		return
	}

	record.LastUsed = m.clock.Now()
	record.UseCount++
	if err := m.records.WriteValue(ctx, recordKey(serviceType, guildID), record, m.config.TTLMs); err != nil {
		_ = level.Debug(m.logger).Log("msg", "usage bump write failed", "guild_id", guildID, "err", err)
		return
	}
	if err := m.registry.UpdateGuildActivity(ctx, guildID); err != nil {
		_ = level.Debug(m.logger).Log("msg", "activity bump failed", "guild_id", guildID, "err", err)
	}
}

// MarkVoiceConnection flips hasVoiceConnection on both the affinity record and the
// guild assignment under the guild lock. A guild with a live voice connection is
// exempt from automatic migration under strict stickiness.
func (m *affinityManager) MarkVoiceConnection(ctx context.Context, guildID, serviceType string, active bool) error {
	err := m.locker.WithLock(ctx, domain.GuildLockResource(guildID), func(ctx context.Context) error {
		record, found, err := m.records.ReadValue(ctx, recordKey(serviceType, guildID))
		if err != nil {
			return err
		}
		if found {
			record.HasVoiceConnection = active
			if err := m.records.WriteValue(ctx, recordKey(serviceType, guildID), record, m.config.TTLMs); err != nil {
				return err
			}
		}

		assignment, found, err := m.registry.GetGuildAssignment(ctx, guildID)
		if err != nil {
			return err
		}
		if found {
			assignment.HasVoiceConnection = active
			return m.registry.AssignGuild(ctx, assignment)
		}
		return nil
	})

	m.recordMutation("mark_voice", err)
	return err
}

// RemoveAffinity deletes the affinity record and the guild assignment under the guild
// lock.
func (m *affinityManager) RemoveAffinity(ctx context.Context, guildID, serviceType string) error {
	err := m.locker.WithLock(ctx, domain.GuildLockResource(guildID), func(ctx context.Context) error {
		if err := m.records.DeleteValue(ctx, recordKey(serviceType, guildID)); err != nil {
			return err
		}
		return m.registry.UnassignGuild(ctx, guildID)
	})

	m.recordMutation("remove", err)
	return err
}

// RouteCommand resolves the guild's owner and publishes the command to that instance's
// stream. An existing healthy binding always wins; with no binding, preferred
// stickiness picks the healthy instance with the fewest assigned guilds (stable
// tie-break on instance id) and binds it, while strict stickiness never rebinds here —
// only an explicit SetAffinity (session establishment) may bind under strict.
//
// Returns: (instanceID, true, nil) when routed; ("", false, nil) when no healthy
// instance exists — never an error for that case; ("", false, error) on substrate failure.
func (m *affinityManager) RouteCommand(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (string, bool, error) {
	instanceID, ok, err := m.GetAffinity(ctx, guildID, serviceType)
	if err != nil {
		m.metrics.RecordAffinityOperation("route", "error", false)
		return "", false, err
	}
	hadAffinity := ok

	if !ok {
		if m.config.Stickiness != domain.StickinessPreferred {
			m.metrics.RecordAffinityOperation("route", "no_instance", false)
			return "", false, nil
		}
		instanceID, ok, err = m.pickLeastLoaded(ctx, serviceType)
		if err != nil {
			m.metrics.RecordAffinityOperation("route", "error", false)
			return "", false, err
		}
		if !ok {
			m.metrics.RecordAffinityOperation("route", "no_instance", false)
			return "", false, nil
		}
		if err := m.SetAffinity(ctx, guildID, instanceID, serviceType, false); err != nil {
			m.metrics.RecordAffinityOperation("route", "error", false)
			return "", false, err
		}
	}

	if err := m.bus.PublishCommand(ctx, serviceType, instanceID, cmd); err != nil {
		m.metrics.RecordAffinityOperation("route", "error", hadAffinity)
		return "", false, err
	}

	m.metrics.RecordAffinityOperation("route", "ok", hadAffinity)
	return instanceID, true, nil
}

// HandleInstanceFailure sweeps every guild assigned to the failed instance. A binding
// is deliberately preserved when the guild has a live voice connection and stickiness
// is strict — the session is expected to resume when the instance returns. Every other
// binding is released so the next command rebinds to a healthy instance naturally.
// The sweep continues past per-guild failures; the last error is returned.
func (m *affinityManager) HandleInstanceFailure(ctx context.Context, failedInstanceID, serviceType string) error {
	guilds, err := m.registry.GetInstanceGuilds(ctx, failedInstanceID)
	if err != nil {
		return err
	}

	var lastErr error
	for _, guildID := range guilds {
		assignment, found, err := m.registry.GetGuildAssignment(ctx, guildID)
		if err != nil {
			lastErr = err
			continue
		}
		if !found || assignment.InstanceID != failedInstanceID {
			continue
		}

		if assignment.HasVoiceConnection && m.config.Stickiness == domain.StickinessStrict {
			_ = level.Info(m.logger).Log("msg", "preserving voice session binding", "guild_id", guildID, "instance_id", failedInstanceID)
			m.metrics.RecordAffinityOperation("failover", "preserved", true)
			continue
		}

		if err := m.RemoveAffinity(ctx, guildID, serviceType); err != nil {
			_ = level.Error(m.logger).Log("msg", "failed to release affinity", "guild_id", guildID, "err", err)
			lastErr = err
		}
	}

	return lastErr
}

// pickLeastLoaded returns the healthy instance with the fewest assigned guilds, ties
// broken by lowest instance id for deterministic selection.
func (m *affinityManager) pickLeastLoaded(ctx context.Context, serviceType string) (string, bool, error) {
	instances, err := m.registry.GetHealthyInstances(ctx, serviceType)
	if err != nil {
		return "", false, err
	}
	if len(instances) == 0 {
		return "", false, nil
	}

	best := instances[0]
	for _, candidate := range instances[1:] {
		if len(candidate.AssignedGuilds) < len(best.AssignedGuilds) ||
			(len(candidate.AssignedGuilds) == len(best.AssignedGuilds) && candidate.InstanceID < best.InstanceID) {
			best = candidate
		}
	}
	return best.InstanceID, true, nil
}

// recordMutation translates a mutation outcome into affinity and lock metrics.
func (m *affinityManager) recordMutation(operation string, err error) {
	switch {
	case err == nil:
		m.metrics.RecordAffinityOperation(operation, "ok", true)
		m.metrics.RecordLockAcquisition("ok")
	case IsLockAcquisitionTimeoutError(err):
		m.metrics.RecordAffinityOperation(operation, "error", true)
		m.metrics.RecordLockAcquisition("timeout")
		_ = level.Warn(m.logger).Log("msg", "guild lock contested", "operation", operation, "err", err)
	default:
		m.metrics.RecordAffinityOperation(operation, "error", true)
		m.metrics.RecordLockAcquisition("ok")
		_ = level.Error(m.logger).Log("msg", fmt.Sprintf("affinity %s failed", operation), "err", err)
	}
}
