package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildMutex_Run_SingleTask(t *testing.T) {
	m := NewGuildMutex()
	ran := false

	err := m.Run(context.Background(), "g1", func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, m.Pending("g1"))
}

func TestGuildMutex_Run_FIFOOrderSameGuild(t *testing.T) {
	m := NewGuildMutex()

	var mu sync.Mutex
	var order []int
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = m.Run(context.Background(), "g1", func(ctx context.Context) error {
			close(firstStarted)
			<-release
			mu.Lock()
			order = append(order, 1)
			mu.Unlock()
			return nil
		})
	}()

	<-firstStarted
	for i := 2; i <= 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Run(context.Background(), "g1", func(ctx context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// Give each successor time to take its slot so arrival order is fixed.
		time.Sleep(20 * time.Millisecond)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestGuildMutex_Run_DifferentGuildsDoNotBlock(t *testing.T) {
	m := NewGuildMutex()

	blocked := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = m.Run(context.Background(), "g1", func(ctx context.Context) error {
			close(blocked)
			<-release
			return nil
		})
	}()
	<-blocked
	defer close(release)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background(), "g2", func(ctx context.Context) error { return nil })
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("task for another guild blocked behind g1")
	}
}

func TestGuildMutex_Run_FailingTaskUnblocksNext(t *testing.T) {
	m := NewGuildMutex()
	boom := errors.New("boom")

	err := m.Run(context.Background(), "g1", func(ctx context.Context) error { return boom })
	assert.Same(t, boom, err)

	err = m.Run(context.Background(), "g1", func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestGuildMutex_Run_PanicBecomesHandlerExecutionError(t *testing.T) {
	m := NewGuildMutex()

	err := m.Run(context.Background(), "g1", func(ctx context.Context) error { panic("kaboom") })
	require.Error(t, err)
	assert.True(t, IsMyError(err, ErrHandlerExecutionError))

	// Chain stays usable after the panic.
	err = m.Run(context.Background(), "g1", func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestGuildMutex_Run_CtxCancelWhileQueued(t *testing.T) {
	m := NewGuildMutex()

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = m.Run(context.Background(), "g1", func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	queuedErr := make(chan error, 1)
	go func() {
		queuedErr <- m.Run(ctx, "g1", func(ctx context.Context) error {
			t.Error("abandoned task must never run")
			return nil
		})
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	require.ErrorIs(t, <-queuedErr, context.Canceled)

	// Successors queued after the abandoned slot still run once the head finishes.
	successor := make(chan error, 1)
	go func() {
		successor <- m.Run(context.Background(), "g1", func(ctx context.Context) error { return nil })
	}()
	close(release)

	select {
	case err := <-successor:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("successor stuck behind abandoned slot")
	}
}

func TestGuildMutex_Pending(t *testing.T) {
	m := NewGuildMutex()
	assert.False(t, m.Pending("g1"))

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = m.Run(context.Background(), "g1", func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	assert.True(t, m.Pending("g1"))
	close(release)
	<-done
	assert.False(t, m.Pending("g1"))
}
