package handlers

import (
	"encoding/json"
	"time"
)

// RegisterRequest is the body of POST /v1/register. A repeat registration for the same
// instance acts as a heartbeat and resets the TTL.
type RegisterRequest struct {
	InstanceId  string `json:"instance_id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	TtlMs       int    `json:"ttl_ms"`
}

// InstanceInfo is one instance in the GET /v1/instances response.
type InstanceInfo struct {
	InstanceId     string    `json:"instance_id"`
	ServiceType    string    `json:"service_type"`
	Status         string    `json:"status"`
	AssignedGuilds []string  `json:"assigned_guilds"`
	LastHeartbeat  time.Time `json:"last_heartbeat"`
}

// InstancesResponse is the body of GET /v1/instances.
type InstancesResponse struct {
	Instances []InstanceInfo `json:"instances"`
}

// AssignmentResponse is the body of GET /v1/guilds/{guild_id}/assignment.
type AssignmentResponse struct {
	GuildId            string    `json:"guild_id"`
	InstanceId         string    `json:"instance_id"`
	ServiceType        string    `json:"service_type"`
	AssignedAt         time.Time `json:"assigned_at"`
	LastActivity       time.Time `json:"last_activity"`
	HasVoiceConnection bool      `json:"has_voice_connection"`
	PlayerActive       bool      `json:"player_active"`
}

// CommandRequest is the body of POST /v1/guilds/{guild_id}/commands. NoWait selects
// fire-and-forget delivery with no response correlation.
type CommandRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	NoWait  bool            `json:"no_wait,omitempty"`
}

// CommandResponse is the body of a correlated command call. Error carries a
// worker-side failure; the HTTP status is still 200 because the call itself succeeded.
type CommandResponse struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
