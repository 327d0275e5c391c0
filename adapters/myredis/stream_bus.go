package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

// Stream entry field names. The payload is the whole StreamCommand as JSON; request_id
// is duplicated as its own field so an error response can still be correlated when the
// payload fails to decode.
const (
	fieldPayload   = "payload"
	fieldRequestID = "request_id"
)

// StreamConfig holds the consumer tuning: how many entries one XREADGROUP call may
// return and how long it blocks when the stream is empty.
type StreamConfig struct {
	BatchSize     int64
	BlockDuration time.Duration
}

// streamBus implements interfaces.CommandBus over Redis Streams (XADD/XREADGROUP/XACK)
// and interfaces.ResponseBus over Redis pub/sub. One stream per instance, one consumer
// group per service type, one pub/sub channel per request id.
type streamBus struct {
	client redis.UniversalClient
	config StreamConfig
	logger log.Logger
}

// NewStreamBus creates the Redis streams/pub-sub bus. Panics on nil client or logger.
func NewStreamBus(client redis.UniversalClient, config StreamConfig, logger log.Logger) *streamBus {
	return &streamBus{
		client: helpers.NilPanic(client, "adapters.myredis.stream_bus.go: client is required"),
		config: config,
		logger: log.With(helpers.NilPanic(logger, "adapters.myredis.stream_bus.go: logger is required"), "component", "stream_bus"),
	}
}

func (b *streamBus) PublishCommand(ctx context.Context, serviceType, instanceID string, cmd domain.StreamCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return service.NewInternalServerError("Redis marshal command error", fmt.Errorf("can't marshal command '%s', err: %w", cmd.Type, err))
	}

	stream := domain.CommandStream(serviceType, instanceID)
	err = b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			fieldRequestID: cmd.RequestID,
			fieldPayload:   payload,
		},
	}).Err()
	if err != nil {
		return service.NewInternalServerError("Redis publish command error", fmt.Errorf("can't publish command to stream '%s', err: %w", stream, err))
	}

	return nil
}

// EnsureGroup creates the stream and the service-type consumer group (MKSTREAM) and
// publishes the reserved bootstrap command. An already-existing group is not an error.
func (b *streamBus) EnsureGroup(ctx context.Context, serviceType, instanceID string) error {
	stream := domain.CommandStream(serviceType, instanceID)
	group := domain.ConsumerGroup(serviceType)

	err := b.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return service.NewInternalServerError("Redis create consumer group error", fmt.Errorf("can't create group '%s' on stream '%s', err: %w", group, stream, err))
	}

	return b.PublishCommand(ctx, serviceType, instanceID, domain.StreamCommand{Type: domain.SystemInitializationType})
}

// Consume reads the instance's command stream in the service-type group until ctx is
// done. Entries are acknowledged after fn returns — fn must not panic through (the
// processor recovers). Transient read errors are logged and retried after a short
// pause so the consume loop never dies.
func (b *streamBus) Consume(ctx context.Context, serviceType, instanceID, consumerName string, fn func(ctx context.Context, cmd domain.StreamCommand)) error {
	stream := domain.CommandStream(serviceType, instanceID)
	group := domain.ConsumerGroup(serviceType)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumerName,
			Streams:  []string{stream, ">"},
			Count:    b.config.BatchSize,
			Block:    b.config.BlockDuration,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			_ = level.Warn(b.logger).Log("msg", "stream read failed, retrying", "stream", stream, "err", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				fn(ctx, decodeCommand(msg))
				if err := b.client.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
					_ = level.Warn(b.logger).Log("msg", "stream ack failed", "stream", stream, "id", msg.ID, "err", err)
				}
			}
		}
	}
}

// decodeCommand extracts the StreamCommand from a stream entry. An undecodable payload
// yields a command with an empty Type and whatever request id the entry carried, which
// the processor turns into a message_malformed error response.
func decodeCommand(msg redis.XMessage) domain.StreamCommand {
	var cmd domain.StreamCommand
	if raw, ok := msg.Values[fieldPayload].(string); ok {
		if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
			cmd = domain.StreamCommand{}
		}
	}
	if cmd.RequestID == "" {
		if id, ok := msg.Values[fieldRequestID].(string); ok {
			cmd.RequestID = id
		}
	}
	return cmd
}

func (b *streamBus) PublishResponse(ctx context.Context, resp domain.StreamResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return service.NewInternalServerError("Redis marshal response error", fmt.Errorf("can't marshal response '%s', err: %w", resp.RequestID, err))
	}

	channel := domain.ResponseChannel(resp.RequestID)
	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		return service.NewInternalServerError("Redis publish response error", fmt.Errorf("can't publish response to channel '%s', err: %w", channel, err))
	}

	return nil
}

// SubscribeResponse subscribes to response:{requestID} and returns a channel that
// delivers the first decodable response. The subscription is confirmed before
// returning so a response published right after cannot be missed. The cancel func
// must be called on every path.
func (b *streamBus) SubscribeResponse(ctx context.Context, requestID string) (<-chan domain.StreamResponse, func(), error) {
	channel := domain.ResponseChannel(requestID)
	pubsub := b.client.Subscribe(ctx, channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, service.NewInternalServerError("Redis subscribe response error", fmt.Errorf("can't subscribe to channel '%s', err: %w", channel, err))
	}

	out := make(chan domain.StreamResponse, 1)
	go func() {
		for msg := range pubsub.Channel() {
			var resp domain.StreamResponse
			if err := json.Unmarshal([]byte(msg.Payload), &resp); err != nil {
				_ = level.Warn(b.logger).Log("msg", "undecodable response dropped", "channel", channel, "err", err)
				continue
			}
			select {
			case out <- resp:
			default:
			}
		}
	}()

	cancel := func() { _ = pubsub.Close() }
	return out, cancel, nil
}
