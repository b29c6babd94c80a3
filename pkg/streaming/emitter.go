package streaming

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Emitter is the per-run event queue. Producers are the driver and the
// graph's instrumentation (possibly from nested sub-agent goroutines);
// the driver's drain loop is the sole consumer. The queue is bounded and
// lossy only for STATUS heartbeats; durability is the persistence layer's
// job, the queue exists for ordering and pacing.
type Emitter struct {
	MessageID string
	ChatID    string
	AgentType string
	AgentID   string

	// ParentCallID is set when this emitter identity belongs to a
	// sub-agent spawned through the task tool.
	ParentCallID string

	queue     chan Event
	active    atomic.Bool
	seq       atomic.Int64
	startTime time.Time

	mu     sync.Mutex
	buffer []Event

	droppedStatus   atomic.Int64
	droppedCritical atomic.Int64

	logger *slog.Logger
}

// NewEmitter creates an emitter for one message run.
func NewEmitter(messageID, chatID string, capacity int) *Emitter {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Emitter{
		MessageID: messageID,
		ChatID:    chatID,
		AgentType: AgentMain,
		AgentID:   AgentMain + "_" + uuid.New().String()[:8],
		queue:     make(chan Event, capacity),
		startTime: time.Now(),
		logger:    slog.With("message_id", messageID, "chat_id", chatID),
	}
}

// Start begins capturing events. Emit is a no-op before Start and after Stop.
func (e *Emitter) Start() {
	e.active.Store(true)
}

// Stop ends capture. Events already queued remain drainable.
func (e *Emitter) Stop() {
	e.active.Store(false)
	e.logger.Info("Event streaming stopped", "buffered_events", e.EventCount())
}

// Emit assigns a provisional ID and queues the event. Returns false when
// the event was not queued (inactive emitter or drop policy).
//
// Drop policy on a full queue: STATUS heartbeats are dropped with a
// warning; anything else is dropped with an error log. Non-STATUS drops
// must be rare by construction, heartbeats are the only flood-prone stream.
func (e *Emitter) Emit(evt Event) bool {
	if !e.active.Load() {
		return false
	}

	// Provisional ID from the local counter; persistence re-mints it
	// with the durable seq.
	evt.ID = MintEventID(e.seq.Add(1))

	e.mu.Lock()
	e.buffer = append(e.buffer, evt)
	e.mu.Unlock()

	select {
	case e.queue <- evt:
		return true
	default:
	}

	if evt.Type == TypeStatus {
		e.droppedStatus.Add(1)
		e.logger.Warn("Dropped STATUS event, queue full")
	} else {
		e.droppedCritical.Add(1)
		e.logger.Error("Queue full, dropping critical event", "type", evt.Type)
	}
	return false
}

// GetNext returns the next queued event, waiting at most timeout.
// The second return is false on timeout or context cancellation.
func (e *Emitter) GetNext(ctx context.Context, timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case evt := <-e.queue:
		return evt, true
	case <-timer.C:
		return Event{}, false
	case <-ctx.Done():
		return Event{}, false
	}
}

// BufferedEvents returns a copy of every event emitted so far.
func (e *Emitter) BufferedEvents() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Event, len(e.buffer))
	copy(out, e.buffer)
	return out
}

// EventCount returns the total number of events emitted.
func (e *Emitter) EventCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buffer)
}

// DroppedStatusCount returns how many STATUS events were dropped.
func (e *Emitter) DroppedStatusCount() int64 {
	return e.droppedStatus.Load()
}

// DroppedCriticalCount returns how many non-STATUS events were dropped.
func (e *Emitter) DroppedCriticalCount() int64 {
	return e.droppedCritical.Load()
}

// Elapsed returns the time since the emitter was created.
func (e *Emitter) Elapsed() time.Duration {
	return time.Since(e.startTime)
}

// --- Typed emit helpers ---

// EmitStart emits the START event for this run.
func (e *Emitter) EmitStart() bool {
	return e.Emit(NewStartEvent(e.MessageID, e.ChatID))
}

// EmitPlan emits a PLAN snapshot.
func (e *Emitter) EmitPlan(items []PlanItem) bool {
	return e.Emit(NewPlanEvent(items))
}

// EmitThinking emits agent reasoning text under this emitter's identity.
func (e *Emitter) EmitThinking(text string) bool {
	return e.Emit(NewThinkingEvent(text, e.AgentType, e.AgentID, e.ParentCallID))
}

// EmitToolStart emits TOOL_START with this emitter's agent identity.
func (e *Emitter) EmitToolStart(callID, name, argsSummary, argsDisplay string) bool {
	evt := NewToolStartEvent(callID, name, argsSummary, argsDisplay)
	evt.AgentType = e.AgentType
	evt.AgentID = e.AgentID
	evt.ParentCallID = e.ParentCallID
	return e.Emit(evt)
}

// EmitToolEnd emits TOOL_END with this emitter's agent identity.
func (e *Emitter) EmitToolEnd(callID, name, status string, ms int64, resultSummary string) bool {
	evt := NewToolEndEvent(callID, name, status, ms, resultSummary)
	evt.AgentType = e.AgentType
	evt.AgentID = e.AgentID
	evt.ParentCallID = e.ParentCallID
	return e.Emit(evt)
}

// EmitSubagentStart emits SUBAGENT_START.
func (e *Emitter) EmitSubagentStart(agentID, parentCallID, description string) bool {
	return e.Emit(NewSubagentStartEvent(agentID, parentCallID, description))
}

// EmitSubagentEnd emits SUBAGENT_END.
func (e *Emitter) EmitSubagentEnd(agentID, parentCallID string, ms *int64) bool {
	return e.Emit(NewSubagentEndEvent(agentID, parentCallID, ms))
}

// EmitContentStart emits CONTENT_START.
func (e *Emitter) EmitContentStart() bool {
	return e.Emit(NewContentStartEvent(e.AgentType, e.AgentID))
}

// EmitContent emits one markdown CONTENT chunk.
func (e *Emitter) EmitContent(md string) bool {
	return e.Emit(NewContentEvent(md))
}

// EmitContentEnd emits CONTENT_END.
func (e *Emitter) EmitContentEnd() bool {
	return e.Emit(NewContentEndEvent(e.AgentType, e.AgentID))
}

// EmitStatus emits a STATUS heartbeat.
func (e *Emitter) EmitStatus(text string) bool {
	return e.Emit(NewStatusEvent(text))
}

// EmitEnd emits the terminal END event with the total elapsed time.
func (e *Emitter) EmitEnd(status string, toolCalls int) bool {
	return e.Emit(NewEndEvent(status, e.Elapsed().Milliseconds(), toolCalls))
}

// EmitError emits an ERROR event; msg is sanitized here.
func (e *Emitter) EmitError(msg string) bool {
	return e.Emit(NewErrorEvent(SanitizeErrorMessage(msg)))
}
