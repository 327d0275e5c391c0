package domain

import (
	"encoding/json"
	"time"
)

// SystemInitializationType is the reserved bootstrap command type published once per
// stream only to force stream creation. Consumers acknowledge it without invoking any
// handler and without emitting a response.
const SystemInitializationType = "SYSTEM_INITIALIZATION"

// StreamCommand is the inbound wire message published on an instance's command stream.
// RequestID is empty for fire-and-forget commands; no response is sent for those.
type StreamCommand struct {
	RequestID string          `json:"request_id,omitempty"`
	Type      string          `json:"type"`
	GuildID   string          `json:"guild_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// StreamResponse is the outbound wire message published on the response channel scoped
// to the request. Exactly one of Data or Error is set.
type StreamResponse struct {
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
