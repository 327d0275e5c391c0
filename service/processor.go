package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Handler processes one guild command on the owning instance. The returned data (may
// be nil) becomes the response payload when the command carries a request id.
// Handlers that need per-guild ordering run their work through GuildMutex.Run.
type Handler func(ctx context.Context, cmd domain.StreamCommand) (json.RawMessage, error)

type processorState int

const (
	stateUninitialized processorState = iota
	stateInitialized
	stateShutdown
)

// CommandProcessor is the per-instance consumer: it pulls guild-scoped commands from
// the instance's stream inside the service-type consumer group, dispatches them to
// registered handlers and emits exactly one response per command that carries a
// request id. Processor-level errors become structured error responses and never
// crash the consume loop.
type CommandProcessor struct {
	bus       interfaces.CommandBus
	responses interfaces.ResponseBus
	metrics   *Metrics
	clock     interfaces.TimeProvider
	logger    log.Logger

	serviceType  string
	instanceID   string
	consumerName string

	mu       sync.RWMutex
	handlers map[string]Handler
	state    processorState
	cancel   context.CancelFunc
}

// NewCommandProcessor creates a processor for one instance. consumerName must be
// unique per process inside the shared consumer group (e.g. instance id + a fresh
// uuid, built in cmd/main). Panics on nil dependency or empty identifier.
func NewCommandProcessor(
	bus interfaces.CommandBus,
	responses interfaces.ResponseBus,
	metrics *Metrics,
	clock interfaces.TimeProvider,
	serviceType string,
	instanceID string,
	consumerName string,
	logger log.Logger,
) *CommandProcessor {
	return &CommandProcessor{
		bus:          helpers.NilPanic(bus, "service.processor.go: bus is required"),
		responses:    helpers.NilPanic(responses, "service.processor.go: responses is required"),
		metrics:      helpers.NilPanic(metrics, "service.processor.go: metrics is required"),
		clock:        helpers.NilPanic(clock, "service.processor.go: clock is required"),
		serviceType:  helpers.StrPanic(serviceType, "service.processor.go: serviceType is required"),
		instanceID:   helpers.StrPanic(instanceID, "service.processor.go: instanceID is required"),
		consumerName: helpers.StrPanic(consumerName, "service.processor.go: consumerName is required"),
		logger:       log.With(helpers.NilPanic(logger, "service.processor.go: logger is required"), "component", "command_processor"),
		handlers:     make(map[string]Handler),
	}
}

// RegisterHandler populates the dispatch table. Re-registering a type overwrites the
// previous handler; no uniqueness is enforced.
func (p *CommandProcessor) RegisterHandler(commandType string, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[commandType] = handler
}

// Initialize ensures the stream and consumer group exist and starts the consume
// goroutine. The goroutine runs on a context detached from ctx so the consumer
// lifetime is bound to Shutdown, not to the initialization call.
//
// Returns: nil on success; bad_parameter when called in any state but uninitialized;
// the bus error when group creation fails.
func (p *CommandProcessor) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateUninitialized {
		return NewBadParameterError(fmt.Sprintf("processor for '%s' is already initialized or shut down", p.instanceID), nil)
	}

	if err := p.bus.EnsureGroup(ctx, p.serviceType, p.instanceID); err != nil {
		return err
	}

	consumeCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.state = stateInitialized

	go func() {
		if err := p.bus.Consume(consumeCtx, p.serviceType, p.instanceID, p.consumerName, p.handleMessage); err != nil && consumeCtx.Err() == nil {
			_ = level.Error(p.logger).Log("msg", "consume loop exited", "err", err)
		}
	}()

	_ = level.Info(p.logger).Log("msg", "command processor initialized", "instance_id", p.instanceID, "consumer", p.consumerName)
	return nil
}

// Shutdown clears the handler table and stops the consumer. It does not wait for
// in-flight handler invocations to drain; graceful draining is the caller's job.
// Idempotent.
func (p *CommandProcessor) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateInitialized {
		p.state = stateShutdown
		return
	}

	p.state = stateShutdown
	p.handlers = make(map[string]Handler)
	p.cancel()
	_ = level.Info(p.logger).Log("msg", "command processor shut down", "instance_id", p.instanceID)
}

// handleMessage dispatches one stream entry. Every outcome is terminal here: errors
// turn into error responses (when a request id exists) and metrics, never into a
// crashed consume loop.
func (p *CommandProcessor) handleMessage(ctx context.Context, cmd domain.StreamCommand) {
	if cmd.Type == "" {
		p.metrics.RecordCommand("unknown", "malformed", 0)
		if cmd.RequestID != "" {
			p.respondError(ctx, cmd.RequestID, NewMessageMalformedError("command is missing its type field", nil))
		}
		return
	}

	// Bootstrap entries only force stream creation; no handler, no response.
	if cmd.Type == domain.SystemInitializationType {
		return
	}

	p.mu.RLock()
	handler, ok := p.handlers[cmd.Type]
	p.mu.RUnlock()
	if !ok {
		p.metrics.RecordCommand(cmd.Type, "handler_not_found", 0)
		if cmd.RequestID != "" {
			p.respondError(ctx, cmd.RequestID, NewHandlerNotFoundError(fmt.Sprintf("no handler registered for command type '%s'", cmd.Type), nil))
		}
		return
	}

	start := time.Now()
	data, err := p.invoke(ctx, handler, cmd)
	duration := time.Since(start)

	if err != nil {
		p.metrics.RecordCommand(cmd.Type, "error", duration)
		_ = level.Error(p.logger).Log("msg", "command handler failed", "type", cmd.Type, "guild_id", cmd.GuildID, "err", err)
		if cmd.RequestID != "" {
			p.respondError(ctx, cmd.RequestID, err)
		}
		return
	}

	p.metrics.RecordCommand(cmd.Type, "ok", duration)
	if cmd.RequestID != "" {
		p.respond(ctx, domain.StreamResponse{
			RequestID: cmd.RequestID,
			Data:      data,
			Timestamp: p.clock.Now(),
		})
	}
}

// invoke runs the handler converting a panic into handler_execution_error.
func (p *CommandProcessor) invoke(ctx context.Context, handler Handler, cmd domain.StreamCommand) (data json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = NewHandlerExecutionError(fmt.Sprintf("handler for '%s' panicked", cmd.Type), fmt.Errorf("panic: %v", r))
		}
	}()
	return handler(ctx, cmd)
}

func (p *CommandProcessor) respondError(ctx context.Context, requestID string, err error) {
	p.respond(ctx, domain.StreamResponse{
		RequestID: requestID,
		Error:     err.Error(),
		Timestamp: p.clock.Now(),
	})
}

func (p *CommandProcessor) respond(ctx context.Context, resp domain.StreamResponse) {
	if err := p.responses.PublishResponse(ctx, resp); err != nil {
		_ = level.Warn(p.logger).Log("msg", "response publish failed", "request_id", resp.RequestID, "err", err)
	}
}
