package domain

import "time"

// InstanceStatus is the reported health of a worker instance.
type InstanceStatus string

const (
	StatusHealthy   InstanceStatus = "healthy"
	StatusDegraded  InstanceStatus = "degraded"
	StatusUnhealthy InstanceStatus = "unhealthy"
)

// Stickiness is the rebinding policy for guilds that lose their affine instance:
// strict — the guild waits for the same instance to return; preferred — the guild
// may rebind to any healthy instance on the next command.
type Stickiness string

const (
	StickinessStrict    Stickiness = "strict"
	StickinessPreferred Stickiness = "preferred"
)

// ServiceInstance represents a registered worker instance.
// Fields match API: instance_id, service_type, status, assigned_guilds, last_heartbeat.
// AssignedGuilds is filled from the instance guild set on reads; the stored value is
// last-write-wins bookkeeping, not a consistency anchor.
type ServiceInstance struct {
	InstanceID     string         `json:"instance_id"`
	ServiceType    string         `json:"service_type"`
	Status         InstanceStatus `json:"status"`
	AssignedGuilds []string       `json:"assigned_guilds,omitempty"`
	LastHeartbeat  time.Time      `json:"last_heartbeat"`
}

// GuildAssignment is the bookkeeping record of which instance owns a guild's session.
// One logical record per guild, upserted by the affinity manager through the registry.
type GuildAssignment struct {
	GuildID            string    `json:"guild_id"`
	InstanceID         string    `json:"instance_id"`
	ServiceType        string    `json:"service_type"`
	AssignedAt         time.Time `json:"assigned_at"`
	LastActivity       time.Time `json:"last_activity"`
	HasVoiceConnection bool      `json:"has_voice_connection"`
	PlayerActive       bool      `json:"player_active"`
}

// AffinityRecord is the TTL'd fast-path copy of a guild→instance binding.
// While valid it names exactly one instance as the guild's owner; all mutations go
// through the guild lock. It is the authoritative copy for routing decisions;
// GuildAssignment is bookkeeping read by failure sweeps.
type AffinityRecord struct {
	GuildID            string    `json:"guild_id"`
	InstanceID         string    `json:"instance_id"`
	ServiceType        string    `json:"service_type"`
	HasVoiceConnection bool      `json:"has_voice_connection"`
	CreatedAt          time.Time `json:"created_at"`
	LastUsed           time.Time `json:"last_used"`
	UseCount           int64     `json:"use_count"`
}
