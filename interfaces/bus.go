package interfaces

import (
	"context"

	"mycoordinator/domain"
)

// CommandBus publishes guild commands to per-instance streams and consumes them in a
// shared consumer group per service type. The substrate gives at-least-once delivery
// with per-stream ordering; intra-guild ordering holds only while the guild keeps
// routing to the same instance.
//
// Implemented by adapters myredis.StreamBus (XADD / XREADGROUP / XACK).
//
//go:generate moq -stub -out mock/command_bus.go -pkg mock . CommandBus
type CommandBus interface {
	// PublishCommand appends the command to commands:{serviceType}:{instanceID}.
	// Returns: nil on success; internal_server_error on marshal or Redis failure.
	// Called from service.affinityManager.RouteCommand after resolving the owner.
	PublishCommand(ctx context.Context, serviceType, instanceID string, cmd domain.StreamCommand) error

	// EnsureGroup creates the instance's command stream and the service-type consumer
	// group if they do not exist (MKSTREAM; an already-existing group is not an error)
	// and publishes the reserved bootstrap command to force stream creation.
	// Called from service.commandProcessor.Initialize.
	EnsureGroup(ctx context.Context, serviceType, instanceID string) error

	// Consume reads commands for the instance in the service-type consumer group under
	// the unique consumerName and invokes fn for each entry, acknowledging the entry
	// after fn returns. Blocks until ctx is done; reads use the configured batch size
	// and block duration. fn must never panic through (the processor recovers).
	// Returns: ctx.Err() after cancellation; transient read errors are retried inside.
	// Called from service.commandProcessor.Initialize in its consume goroutine.
	Consume(ctx context.Context, serviceType, instanceID, consumerName string, fn func(ctx context.Context, cmd domain.StreamCommand)) error
}

// ResponseBus delivers one response per correlated request over pub/sub channels
// scoped to the request id.
//
// Implemented by adapters myredis.StreamBus.
//
//go:generate moq -stub -out mock/response_bus.go -pkg mock . ResponseBus
type ResponseBus interface {
	// PublishResponse publishes the response on response:{resp.RequestID}. A response
	// with no subscriber is dropped by the substrate; that is the fire-and-forget
	// degradation path, not an error.
	// Called from service.commandProcessor after each handled command with a request id.
	PublishResponse(ctx context.Context, resp domain.StreamResponse) error

	// SubscribeResponse subscribes to response:{requestID} before the command is
	// published so the response cannot be missed. The returned cancel func tears the
	// subscription down and must be called on both the success and timeout paths.
	// Returns: (ch, cancel, nil) on success; (nil, nil, error) on subscribe failure.
	// Called from service.correlator.Call.
	SubscribeResponse(ctx context.Context, requestID string) (<-chan domain.StreamResponse, func(), error)
}
