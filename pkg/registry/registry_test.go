package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForCompleted(t *testing.T, r *Registry, messageID string) TaskInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		info, ok := r.GetTask(messageID)
		if ok && info.Completed {
			return info
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("task %s did not complete in time", messageID)
	return TaskInfo{}
}

func TestStartAgent_RunsDetached(t *testing.T) {
	r := New()
	done := make(chan struct{})

	info, started, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		close(done)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, "msg-1", info.MessageID)
	assert.Equal(t, "chat-1", info.ChatID)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("agent never ran")
	}

	final := waitForCompleted(t, r, "msg-1")
	assert.True(t, final.Completed)
	assert.Empty(t, final.Error)
}

func TestStartAgent_Idempotent(t *testing.T) {
	r := New()
	release := make(chan struct{})
	started := make(chan struct{})

	_, first, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})
	require.NoError(t, err)
	require.True(t, first)
	<-started

	runs := 0
	info, second, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		runs++
		return nil
	})
	require.NoError(t, err)
	assert.False(t, second, "second start must not spawn a new agent")
	assert.Equal(t, "msg-1", info.MessageID)
	assert.Equal(t, 0, runs)
	assert.Equal(t, 1, r.ActiveCount())

	close(release)
	r.Shutdown()
}

func TestStartAgent_CompletedTaskCanBeRestarted(t *testing.T) {
	r := New()

	_, _, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	waitForCompleted(t, r, "msg-1")

	ran := make(chan struct{})
	_, started, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		close(ran)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, started, "a completed task must not block a resume run")

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("resume run never started")
	}
	r.Shutdown()
}

func TestStartAgent_RecordsError(t *testing.T) {
	r := New()

	_, _, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		return errors.New("graph unreachable")
	})
	require.NoError(t, err)

	info := waitForCompleted(t, r, "msg-1")
	assert.Equal(t, "graph unreachable", info.Error)
	assert.False(t, r.IsRunning("msg-1"))
}

func TestStartAgent_RecoversPanic(t *testing.T) {
	r := New()

	_, _, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		panic("boom")
	})
	require.NoError(t, err)

	info := waitForCompleted(t, r, "msg-1")
	assert.Contains(t, info.Error, "agent panicked")
	assert.Contains(t, info.Error, "boom")
}

func TestWatcherAccounting(t *testing.T) {
	r := New()
	release := make(chan struct{})

	_, _, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		<-release
		return nil
	})
	require.NoError(t, err)

	require.True(t, r.RegisterWatcher("msg-1", "w1"))
	require.True(t, r.RegisterWatcher("msg-1", "w2"))
	assert.False(t, r.RegisterWatcher("no-such-message", "w3"))

	info, ok := r.GetTask("msg-1")
	require.True(t, ok)
	assert.Equal(t, 2, info.Watchers)

	// While the agent is still running, dropping all watchers keeps the task.
	r.UnregisterWatcher("msg-1", "w1")
	r.UnregisterWatcher("msg-1", "w2")
	_, ok = r.GetTask("msg-1")
	assert.True(t, ok)

	close(release)
	waitForCompleted(t, r, "msg-1")

	// Completed and watcher-less: the next unregister removes the entry.
	require.True(t, r.RegisterWatcher("msg-1", "w4"))
	r.UnregisterWatcher("msg-1", "w4")
	_, ok = r.GetTask("msg-1")
	assert.False(t, ok)

	// Idempotent on a gone task.
	r.UnregisterWatcher("msg-1", "w4")
}

func TestListRunning_FiltersByChat(t *testing.T) {
	r := New()
	release := make(chan struct{})
	block := func(ctx context.Context) error {
		<-release
		return nil
	}

	_, _, err := r.StartAgent("msg-1", "chat-a", block)
	require.NoError(t, err)
	_, _, err = r.StartAgent("msg-2", "chat-a", block)
	require.NoError(t, err)
	_, _, err = r.StartAgent("msg-3", "chat-b", block)
	require.NoError(t, err)

	assert.Len(t, r.ListRunning(""), 3)
	assert.Len(t, r.ListRunning("chat-a"), 2)
	assert.Len(t, r.ListRunning("chat-b"), 1)
	assert.Empty(t, r.ListRunning("chat-c"))
	assert.Equal(t, 3, r.ActiveCount())

	close(release)
	r.Shutdown()
}

func TestCleanupOldTasks(t *testing.T) {
	r := New()

	_, _, err := r.StartAgent("old-done", "chat-1", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	waitForCompleted(t, r, "old-done")

	release := make(chan struct{})
	_, _, err = r.StartAgent("still-running", "chat-1", func(ctx context.Context) error {
		<-release
		return nil
	})
	require.NoError(t, err)

	// maxAge 0 means everything started before now is old.
	removed := r.CleanupOldTasks(0)
	assert.Equal(t, 1, removed)

	_, ok := r.GetTask("old-done")
	assert.False(t, ok)
	assert.True(t, r.IsRunning("still-running"))

	// A watched completed task survives the sweep.
	_, _, err = r.StartAgent("watched-done", "chat-1", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	waitForCompleted(t, r, "watched-done")
	require.True(t, r.RegisterWatcher("watched-done", "w1"))
	assert.Equal(t, 0, r.CleanupOldTasks(0))
	_, ok = r.GetTask("watched-done")
	assert.True(t, ok)

	close(release)
	r.Shutdown()
}

func TestShutdown_CancelsAgents(t *testing.T) {
	r := New()
	cancelled := make(chan struct{})

	_, _, err := r.StartAgent("msg-1", "chat-1", func(ctx context.Context) error {
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		r.Shutdown()
		close(done)
	}()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("agent context was never cancelled")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}

	_, _, err = r.StartAgent("msg-2", "chat-1", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrShuttingDown)
}
