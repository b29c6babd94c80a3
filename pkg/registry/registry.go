// Package registry tracks live agent runs and the watchers attached to
// them. An agent, once started, is owned by the registry: its context is
// derived from the registry, never from the HTTP request that launched it,
// so request cancellation can never reach a running agent.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrShuttingDown is returned by StartAgent after Shutdown has begun.
var ErrShuttingDown = errors.New("registry is shutting down")

// TaskInfo is a read-only snapshot of an AgentTask.
type TaskInfo struct {
	MessageID string    `json:"message_id"`
	ChatID    string    `json:"chat_id"`
	StartedAt time.Time `json:"started_at"`
	Watchers  int       `json:"watchers"`
	Completed bool      `json:"completed"`
	Error     string    `json:"error,omitempty"`
}

type agentTask struct {
	messageID string
	chatID    string
	startedAt time.Time
	watchers  map[string]struct{}
	completed bool
	err       string
	cancel    context.CancelFunc
}

func (t *agentTask) info() TaskInfo {
	return TaskInfo{
		MessageID: t.messageID,
		ChatID:    t.chatID,
		StartedAt: t.startedAt,
		Watchers:  len(t.watchers),
		Completed: t.completed,
		Error:     t.err,
	}
}

// Registry is the process-wide directory of agent tasks, keyed by
// message_id. One coarse mutex guards all operations; contention is low
// and every operation is a map lookup.
type Registry struct {
	mu      sync.Mutex
	tasks   map[string]*agentTask
	stopped bool
	wg      sync.WaitGroup
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tasks: make(map[string]*agentTask),
	}
}

// StartAgent spawns run as a detached background goroutine and registers
// it under messageID. Starting an already-registered messageID is
// idempotent: the existing task is returned and started is false.
//
// The run function receives a registry-owned context. Its result is
// recorded on the task; a panic is recovered into an error. The task is
// marked completed on every exit path and errors are never re-raised.
func (r *Registry) StartAgent(messageID, chatID string, run func(ctx context.Context) error) (TaskInfo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return TaskInfo{}, false, ErrShuttingDown
	}
	if existing, ok := r.tasks[messageID]; ok && !existing.completed {
		slog.Warn("Agent already running", "message_id", messageID)
		return existing.info(), false, nil
	}
	// A completed entry lingering for its watchers is replaced; this is
	// what lets a resumed run reuse the message id.

	ctx, cancel := context.WithCancel(context.Background())
	task := &agentTask{
		messageID: messageID,
		chatID:    chatID,
		startedAt: time.Now(),
		watchers:  make(map[string]struct{}),
		cancel:    cancel,
	}
	r.tasks[messageID] = task

	r.wg.Add(1)
	go r.runAgent(ctx, task, run)

	slog.Info("Started background agent", "message_id", messageID, "chat_id", chatID)
	return task.info(), true, nil
}

func (r *Registry) runAgent(ctx context.Context, task *agentTask, run func(ctx context.Context) error) {
	defer r.wg.Done()
	defer task.cancel()

	err := runRecovered(ctx, run)

	r.mu.Lock()
	defer r.mu.Unlock()
	task.completed = true
	if err != nil {
		task.err = err.Error()
		slog.Error("Agent failed", "message_id", task.messageID, "error", err)
	} else {
		slog.Info("Agent completed", "message_id", task.messageID)
	}
}

func runRecovered(ctx context.Context, run func(ctx context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("agent panicked: %v", p)
		}
	}()
	return run(ctx)
}

// GetTask returns a snapshot of the task registered for messageID.
func (r *Registry) GetTask(messageID string) (TaskInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[messageID]
	if !ok {
		return TaskInfo{}, false
	}
	return task.info(), true
}

// IsRunning reports whether an agent for messageID is registered and not
// yet completed.
func (r *Registry) IsRunning(messageID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[messageID]
	return ok && !task.completed
}

// RegisterWatcher records a stream watching this agent. Returns false when
// no task is registered for messageID.
func (r *Registry) RegisterWatcher(messageID, watcherID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[messageID]
	if !ok {
		return false
	}
	task.watchers[watcherID] = struct{}{}
	return true
}

// UnregisterWatcher removes a watcher. When the task is completed and the
// last watcher leaves, the entry is removed; unregistering an unknown
// watcher or message is a no-op, so removal is idempotent.
func (r *Registry) UnregisterWatcher(messageID, watcherID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[messageID]
	if !ok {
		return
	}
	delete(task.watchers, watcherID)

	if task.completed && len(task.watchers) == 0 {
		delete(r.tasks, messageID)
		slog.Info("Removed completed agent, no watchers left", "message_id", messageID)
	}
}

// ListRunning returns running tasks, optionally filtered by chat.
func (r *Registry) ListRunning(chatID string) []TaskInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []TaskInfo
	for _, task := range r.tasks {
		if task.completed {
			continue
		}
		if chatID != "" && task.chatID != chatID {
			continue
		}
		out = append(out, task.info())
	}
	return out
}

// ActiveCount returns the number of running agents.
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, task := range r.tasks {
		if !task.completed {
			n++
		}
	}
	return n
}

// CleanupOldTasks sweeps completed, watcher-less tasks older than maxAge.
// Returns the number removed.
func (r *Registry) CleanupOldTasks(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for messageID, task := range r.tasks {
		if task.completed && len(task.watchers) == 0 && task.startedAt.Before(cutoff) {
			delete(r.tasks, messageID)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Swept old agent tasks", "count", removed)
	}
	return removed
}

// Shutdown cancels every task's context and waits for the agents to exit.
// Registry shutdown is the only legitimate canceller of an agent run.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	r.stopped = true
	for _, task := range r.tasks {
		task.cancel()
	}
	r.mu.Unlock()

	r.wg.Wait()
	slog.Info("Agent registry stopped")
}
