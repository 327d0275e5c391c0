package service

import (
	"context"
	"fmt"
	"sync"
)

// GuildMutex serializes tasks per guild id inside one process: an arena of per-guild
// FIFO chains, each chain a linked sequence of done-channels. Run calls for the same
// guild execute strictly in arrival order; different guilds never block each other.
// The guarantee is intra-process only — cross-process exclusivity for a guild is the
// affinity manager's job, not this primitive's.
type GuildMutex struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

// NewGuildMutex creates an empty arena.
func NewGuildMutex() *GuildMutex {
	return &GuildMutex{tails: make(map[string]chan struct{})}
}

// Run appends task to the tail of the guild's chain, waits for every earlier task of
// that guild to finish, executes task and returns its error. A failing or panicking
// task still unblocks the next queued task; the failure is propagated to this caller,
// never swallowed. If ctx ends while queued the slot is abandoned (task never runs,
// ctx.Err() is returned) but successors are still unblocked in order.
func (m *GuildMutex) Run(ctx context.Context, guildID string, task func(ctx context.Context) error) error {
	m.mu.Lock()
	prev := m.tails[guildID]
	done := make(chan struct{})
	m.tails[guildID] = done
	m.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			// Keep the chain intact: hand our slot over once the predecessor finishes.
			go func() {
				<-prev
				m.finish(guildID, done)
			}()
			return ctx.Err()
		}
	}
	defer m.finish(guildID, done)

	return runRecovered(ctx, task)
}

// Pending reports whether the guild currently has a queued or running task.
func (m *GuildMutex) Pending(guildID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tails[guildID]
	return ok
}

// finish releases the chain link and evicts the guild's entry when this link is still
// the tail, so idle guilds do not grow the arena over the process lifetime.
func (m *GuildMutex) finish(guildID string, done chan struct{}) {
	close(done)
	m.mu.Lock()
	if m.tails[guildID] == done {
		delete(m.tails, guildID)
	}
	m.mu.Unlock()
}

// runRecovered executes task converting a panic into handler_execution_error so one
// misbehaving task cannot take down the chain or the consume loop above it.
func runRecovered(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewHandlerExecutionError("task panicked", fmt.Errorf("panic: %v", r))
		}
	}()
	return task(ctx)
}
