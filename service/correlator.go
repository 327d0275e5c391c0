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
	"github.com/google/uuid"
)

// DefaultResponseTimeout bounds how long Call waits for the owning instance to answer
// before giving up on the request. Overridable via CorrelatorConfig.
const DefaultResponseTimeout = 2000 * time.Millisecond

// CorrelatorConfig carries the single correlator tunable.
type CorrelatorConfig struct {
	// ResponseTimeout is the per-request wait budget. Zero or negative selects
	// DefaultResponseTimeout.
	ResponseTimeout time.Duration
}

// Correlator turns the one-way command stream into a request/response call: it tags
// each command with a fresh request id, subscribes for the response before routing so
// a fast worker cannot answer into the void, and waits for exactly one response or a
// timeout. Commands routed through Notify skip correlation entirely.
type Correlator struct {
	affinity  interfaces.AffinityManager
	responses interfaces.ResponseBus
	timeout   time.Duration
	logger    log.Logger
}

// NewCorrelator creates a correlator over the given router and response bus.
// Panics on nil dependency.
func NewCorrelator(
	affinity interfaces.AffinityManager,
	responses interfaces.ResponseBus,
	config CorrelatorConfig,
	logger log.Logger,
) *Correlator {
	timeout := config.ResponseTimeout
	if timeout <= 0 {
		timeout = DefaultResponseTimeout
	}
	return &Correlator{
		affinity:  helpers.NilPanic(affinity, "service.correlator.go: affinity is required"),
		responses: helpers.NilPanic(responses, "service.correlator.go: responses is required"),
		timeout:   timeout,
		logger:    log.With(helpers.NilPanic(logger, "service.correlator.go: logger is required"), "component", "correlator"),
	}
}

// Call routes cmd to the guild's owning instance and waits for the matching response.
// Any request id already present on cmd is replaced by a fresh one; correlation ids
// are never caller-supplied.
//
// Returns:
//   - (resp, nil) when a response arrived in time. resp.Error may still carry a
//     worker-side failure; interpreting it is the caller's job.
//   - instance_unavailable when no healthy instance could own the guild.
//   - response_timeout when the wait budget elapses. The command may still execute on
//     the worker; at-least-once delivery is not rolled back here.
//   - ctx.Err() when the caller's context ends first.
//
// Called from handlers issuing synchronous guild commands.
func (c *Correlator) Call(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (domain.StreamResponse, error) {
	cmd.RequestID = uuid.NewString()
	cmd.GuildID = guildID

	// Subscribe before routing so the response channel exists when the worker answers.
	ch, cancel, err := c.responses.SubscribeResponse(ctx, cmd.RequestID)
	if err != nil {
		return domain.StreamResponse{}, err
	}
	defer cancel()

	instanceID, ok, err := c.affinity.RouteCommand(ctx, guildID, serviceType, cmd)
	if err != nil {
		return domain.StreamResponse{}, err
	}
	if !ok {
		return domain.StreamResponse{}, NewInstanceUnavailableError(
			fmt.Sprintf("no healthy '%s' instance available for guild '%s'", serviceType, guildID), nil)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case resp, open := <-ch:
		if !open {
			return domain.StreamResponse{}, NewInternalServerError("response subscription closed before a response arrived", nil)
		}
		return resp, nil
	case <-timer.C:
		_ = level.Warn(c.logger).Log("msg", "response timed out", "request_id", cmd.RequestID, "guild_id", guildID, "instance_id", instanceID, "timeout", c.timeout)
		return domain.StreamResponse{}, NewResponseTimeoutError(
			fmt.Sprintf("no response for request '%s' within %s", cmd.RequestID, c.timeout), nil)
	case <-ctx.Done():
		return domain.StreamResponse{}, ctx.Err()
	}
}

// Notify routes cmd fire-and-forget: no request id, no subscription, no response.
// Returns instance_unavailable when no healthy instance could own the guild.
func (c *Correlator) Notify(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) error {
	cmd.RequestID = ""
	cmd.GuildID = guildID

	_, ok, err := c.affinity.RouteCommand(ctx, guildID, serviceType, cmd)
	if err != nil {
		return err
	}
	if !ok {
		return NewInstanceUnavailableError(
			fmt.Sprintf("no healthy '%s' instance available for guild '%s'", serviceType, guildID), nil)
	}
	return nil
}
