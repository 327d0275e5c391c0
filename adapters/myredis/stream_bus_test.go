package myredis

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"mycoordinator/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreamBus(t *testing.T) (*streamBus, func()) {
	client, cleanup := setupTestRedis(t)
	bus := NewStreamBus(client, StreamConfig{
		BatchSize:     10,
		BlockDuration: 100 * time.Millisecond,
	}, log.NewNopLogger())
	return bus, cleanup
}

func TestStreamBus_EnsureGroup_Idempotent(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	require.NoError(t, bus.EnsureGroup(ctx, "coordtest-audio", "coordtest-i1"))
	// Second call hits BUSYGROUP, which is not an error.
	require.NoError(t, bus.EnsureGroup(ctx, "coordtest-audio", "coordtest-i1"))
}

func TestStreamBus_PublishAndConsume(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	require.NoError(t, bus.EnsureGroup(ctx, "coordtest-audio", "coordtest-i1"))

	sent := domain.StreamCommand{
		RequestID: "r1",
		Type:      "play",
		GuildID:   "g1",
		Payload:   json.RawMessage(`{"track":"abc"}`),
	}
	require.NoError(t, bus.PublishCommand(ctx, "coordtest-audio", "coordtest-i1", sent))

	var mu sync.Mutex
	var received []domain.StreamCommand
	consumeCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = bus.Consume(consumeCtx, "coordtest-audio", "coordtest-i1", "consumer-1", func(ctx context.Context, cmd domain.StreamCommand) {
			mu.Lock()
			received = append(received, cmd)
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) >= 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	got := received[0]
	assert.Equal(t, "r1", got.RequestID)
	assert.Equal(t, "play", got.Type)
	assert.Equal(t, "g1", got.GuildID)
	assert.JSONEq(t, `{"track":"abc"}`, string(got.Payload))
}

func TestStreamBus_Consume_StopsOnCtxCancel(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	require.NoError(t, bus.EnsureGroup(ctx, "coordtest-audio", "coordtest-stop"))

	consumeCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- bus.Consume(consumeCtx, "coordtest-audio", "coordtest-stop", "consumer-1", func(ctx context.Context, cmd domain.StreamCommand) {})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("consume loop did not stop on cancel")
	}
}

func TestStreamBus_ResponseRoundTrip(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	ch, cancel, err := bus.SubscribeResponse(ctx, "coordtest-r1")
	require.NoError(t, err)
	defer cancel()

	sent := domain.StreamResponse{
		RequestID: "coordtest-r1",
		Data:      json.RawMessage(`{"ok":true}`),
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, bus.PublishResponse(ctx, sent))

	select {
	case got := <-ch:
		assert.Equal(t, "coordtest-r1", got.RequestID)
		assert.JSONEq(t, `{"ok":true}`, string(got.Data))
	case <-time.After(5 * time.Second):
		t.Fatal("response never delivered")
	}
}

func TestStreamBus_PublishResponse_NoSubscriberIsDropped(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	// Fire-and-forget degradation path: publishing into the void is not an error.
	err := bus.PublishResponse(ctx, domain.StreamResponse{RequestID: "coordtest-nobody"})
	assert.NoError(t, err)
}

func TestStreamBus_SubscribeResponse_CancelStopsDelivery(t *testing.T) {
	ctx := context.Background()
	bus, cleanup := newTestStreamBus(t)
	defer cleanup()

	ch, cancel, err := bus.SubscribeResponse(ctx, "coordtest-r2")
	require.NoError(t, err)
	cancel()

	// After teardown the response goes nowhere; the channel stays empty.
	require.NoError(t, bus.PublishResponse(ctx, domain.StreamResponse{RequestID: "coordtest-r2"}))
	select {
	case _, open := <-ch:
		// A closed channel is acceptable; a delivered response is not.
		assert.False(t, open)
	case <-time.After(300 * time.Millisecond):
	}
}
