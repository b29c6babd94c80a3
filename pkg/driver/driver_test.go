package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/streaming"
)

// memoryEventStore mimics the persistence contract: it re-mints IDs with a
// durable per-message seq and keeps events in append order.
type memoryEventStore struct {
	mu     sync.Mutex
	seqs   map[string]int64
	events map[string][]streaming.Event
}

func newMemoryEventStore() *memoryEventStore {
	return &memoryEventStore{
		seqs:   make(map[string]int64),
		events: make(map[string][]streaming.Event),
	}
}

func (s *memoryEventStore) Append(_ context.Context, messageID, chatID string, evt streaming.Event) (streaming.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.seqs[messageID]
	s.seqs[messageID]++
	evt.ID = streaming.MintEventID(seq)
	evt.MessageID = messageID
	evt.ChatID = chatID
	s.events[messageID] = append(s.events[messageID], evt)
	return evt, nil
}

func (s *memoryEventStore) all(messageID string) []streaming.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]streaming.Event, len(s.events[messageID]))
	copy(out, s.events[messageID])
	return out
}

func (s *memoryEventStore) types(messageID string) []streaming.EventType {
	events := s.all(messageID)
	out := make([]streaming.EventType, len(events))
	for i, evt := range events {
		out[i] = evt.Type
	}
	return out
}

// memoryMessageStore records lifecycle transitions.
type memoryMessageStore struct {
	mu               sync.Mutex
	status           string
	content          string
	errMsg           string
	processingTimeMs int64
	interruptThread  string
	interruptPayload map[string]any
	interruptCleared bool
}

func (s *memoryMessageStore) MarkProcessing(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = "processing"
	return nil
}

func (s *memoryMessageStore) MarkCompleted(_ context.Context, _ string, content string, ms int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = "completed"
	s.content = content
	s.processingTimeMs = ms
	return nil
}

func (s *memoryMessageStore) MarkFailed(_ context.Context, _ string, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = "failed"
	s.errMsg = errMsg
	return nil
}

func (s *memoryMessageStore) MarkInterrupted(_ context.Context, _ string, threadID string, payload map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interruptThread = threadID
	s.interruptPayload = payload
	return nil
}

func (s *memoryMessageStore) ClearInterrupt(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interruptCleared = true
	return nil
}

// fakeScope returns a configured error from BindTenderScope.
type fakeScope struct {
	err      error
	boundTo  string
	bindCall int
}

func (f *fakeScope) BindTenderScope(_ context.Context, _ string, tenderID string) error {
	f.bindCall++
	if f.err != nil {
		return f.err
	}
	f.boundTo = tenderID
	return nil
}

// scriptedGraph replays a fixed step sequence, with an optional delay
// before each step.
type scriptedGraph struct {
	steps []agent.Step
	delay time.Duration
	input agent.RunInput
}

func (g *scriptedGraph) Stream(ctx context.Context, input agent.RunInput) (<-chan agent.Step, error) {
	g.input = input
	ch := make(chan agent.Step)
	go func() {
		defer close(ch)
		for _, step := range g.steps {
			if g.delay > 0 {
				time.Sleep(g.delay)
			}
			select {
			case ch <- step:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// stuckGraph yields no steps and never closes its channel; a run on it can
// only end through context cancellation.
type stuckGraph struct{}

func (stuckGraph) Stream(context.Context, agent.RunInput) (<-chan agent.Step, error) {
	return make(chan agent.Step), nil
}

func testConfig() config.StreamingConfig {
	return config.StreamingConfig{
		QueueCapacity:       100,
		HeartbeatInterval:   time.Minute,
		PersistRetries:      3,
		PersistRetryBackoff: time.Millisecond,
		ContentChunkWords:   3,
		ContentChunkDelay:   0,
	}
}

func newTestDriver(graph agent.Graph, events *memoryEventStore, messages *memoryMessageStore, scope *fakeScope, cfg config.StreamingConfig) *Driver {
	return New(events, messages, scope, graph, agent.NewContextBuilder(""), cfg)
}

func TestRun_CompletedHappyPath(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.AssistantStep{SnapshotID: "a1", Text: "I should search the corpus first."},
		agent.ToolStartStep{CallID: "c1", Name: "search_tender_corpus", Args: map[string]any{"query": "award criteria"}},
		agent.ToolEndStep{CallID: "c1", Name: "search_tender_corpus", Result: "found 3 results", DurationMs: 40},
		agent.FinalStep{Text: "The award criteria are price and quality, weighted sixty forty."},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	err := d.Run(context.Background(), RunParams{
		ChatID: "chat-1", MessageID: "msg-1", Query: "What are the award criteria?", ThreadID: "chat-1",
	})
	require.NoError(t, err)

	types := events.types("msg-1")
	require.NotEmpty(t, types)
	assert.Equal(t, streaming.TypeStart, types[0])
	assert.Equal(t, streaming.TypeEnd, types[len(types)-1])
	assert.Contains(t, types, streaming.TypeThinking)
	assert.Contains(t, types, streaming.TypeToolStart)
	assert.Contains(t, types, streaming.TypeToolEnd)
	assert.Contains(t, types, streaming.TypeContentStart)
	assert.Contains(t, types, streaming.TypeContent)
	assert.Contains(t, types, streaming.TypeContentEnd)

	all := events.all("msg-1")
	end := all[len(all)-1]
	assert.Equal(t, streaming.EndCompleted, end.Status)
	require.NotNil(t, end.ToolCalls)
	assert.Equal(t, 1, *end.ToolCalls)

	// Chunks concatenate back to the final text.
	var rebuilt string
	for _, evt := range all {
		if evt.Type == streaming.TypeContent {
			rebuilt += evt.MD
		}
	}
	assert.Equal(t, "The award criteria are price and quality, weighted sixty forty.", rebuilt)

	// Seqs are dense and ordered.
	for i, evt := range all {
		seq, err := streaming.ParseEventSeq(evt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}

	assert.Equal(t, "completed", messages.status)
	assert.Equal(t, "The award criteria are price and quality, weighted sixty forty.", messages.content)
}

func TestRun_ThinkingDedupBySnapshotID(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.AssistantStep{SnapshotID: "a1", Text: "First thought."},
		agent.AssistantStep{SnapshotID: "a1", Text: "First thought."},
		agent.AssistantStep{SnapshotID: "a2", Text: "", HasToolCalls: true},
		agent.AssistantStep{SnapshotID: "a3", Text: "Second thought."},
		agent.FinalStep{Text: "Done."},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	require.NoError(t, d.Run(context.Background(), RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q"}))

	thinking := 0
	for _, evt := range events.all("msg-1") {
		if evt.Type == streaming.TypeThinking {
			thinking++
		}
	}
	assert.Equal(t, 2, thinking, "repeated snapshot and tool-call-only snapshot must not emit THINKING")
}

func TestRun_ToolArgsAreSanitized(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.ToolStartStep{CallID: "c1", Name: "get_file_content", Args: map[string]any{
			"file_id": "f-81", "api_key": "sk-secret-value",
		}},
		agent.ToolEndStep{CallID: "c1", Name: "get_file_content", Result: "clause 1\nclause 2\n"},
		agent.FinalStep{Text: "Done."},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	require.NoError(t, d.Run(context.Background(), RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q"}))

	var toolStart, toolEnd streaming.Event
	for _, evt := range events.all("msg-1") {
		switch evt.Type {
		case streaming.TypeToolStart:
			toolStart = evt
		case streaming.TypeToolEnd:
			toolEnd = evt
		}
	}
	assert.Contains(t, toolStart.ArgsSummary, "f-81")
	assert.NotContains(t, toolStart.ArgsSummary, "sk-secret-value")
	assert.Equal(t, "Read 3 lines", toolEnd.ResultSummary)
}

func TestRun_StreamErrorFails(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.AssistantStep{SnapshotID: "a1", Text: "Working on it."},
		agent.ErrorStep{Message: "rpc error: graph worker died"},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	err := d.Run(context.Background(), RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q"})
	require.Error(t, err)

	types := events.types("msg-1")
	require.GreaterOrEqual(t, len(types), 2)
	assert.Equal(t, streaming.TypeError, types[len(types)-2])
	assert.Equal(t, streaming.TypeEnd, types[len(types)-1])

	all := events.all("msg-1")
	assert.Equal(t, streaming.EndFailed, all[len(all)-1].Status)
	assert.Equal(t, "failed", messages.status)
	assert.NotEmpty(t, messages.errMsg)
}

func TestRun_Interrupt(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	payload := map[string]any{"question": "Overwrite report.md?", "context": "write_file"}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.AssistantStep{SnapshotID: "a1", Text: "I will write the report now."},
		agent.InterruptStep{ThreadID: "thread-9", Payload: payload},
		// Nothing after the interrupt may run.
		agent.FinalStep{Text: "should never appear"},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	require.NoError(t, d.Run(context.Background(), RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q", ThreadID: "chat-1"}))

	all := events.all("msg-1")
	end := all[len(all)-1]
	assert.Equal(t, streaming.TypeEnd, end.Type)
	assert.Equal(t, streaming.EndInterrupted, end.Status)

	// The STATUS right before END carries the serialized payload.
	status := all[len(all)-2]
	require.Equal(t, streaming.TypeStatus, status.Type)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(status.Text), &decoded))
	assert.Equal(t, true, decoded["interrupt"])
	assert.Equal(t, "thread-9", decoded["thread_id"])
	assert.Equal(t, "Overwrite report.md?", decoded["question"])

	assert.Equal(t, "thread-9", messages.interruptThread)
	assert.Equal(t, payload, messages.interruptPayload)
	assert.NotEqual(t, "completed", messages.status)
	assert.NotEqual(t, "failed", messages.status)

	for _, evt := range all {
		assert.NotEqual(t, "should never appear", evt.MD)
	}
}

func TestRun_ResumeClearsInterrupt(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.FinalStep{Text: "Report written."},
	}}
	d := newTestDriver(graph, events, messages, &fakeScope{}, testConfig())

	require.NoError(t, d.Run(context.Background(), RunParams{
		ChatID: "chat-1", MessageID: "msg-1", Query: "",
		ThreadID: "thread-9",
		Resume:   &agent.ResumeCommand{Action: "accept"},
	}))

	assert.True(t, messages.interruptCleared)
	require.NotNil(t, graph.input.Resume)
	assert.Equal(t, "accept", graph.input.Resume.Action)
	assert.Equal(t, "thread-9", graph.input.ThreadID)
	assert.Equal(t, "completed", messages.status)
}

func TestRun_ScopeViolation(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	scope := &fakeScope{err: fmt.Errorf("%w: chat chat-1 is bound to a different tender", services.ErrScopeViolation)}
	graph := &scriptedGraph{steps: []agent.Step{
		agent.FinalStep{Text: "should never run"},
	}}
	d := newTestDriver(graph, events, messages, scope, testConfig())

	err := d.Run(context.Background(), RunParams{
		ChatID: "chat-1", MessageID: "msg-1", Query: "q", TenderID: "tender-2",
	})
	require.ErrorIs(t, err, services.ErrScopeViolation)

	types := events.types("msg-1")
	assert.Equal(t, []streaming.EventType{streaming.TypeStart, streaming.TypeError, streaming.TypeEnd}, types)
	all := events.all("msg-1")
	assert.Equal(t, streaming.EndFailed, all[len(all)-1].Status)
	assert.Equal(t, "failed", messages.status)
}

func TestRun_ShutdownCancelStillPersistsTerminalEvents(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	d := newTestDriver(stuckGraph{}, events, messages, &fakeScope{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	err := d.Run(ctx, RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q"})
	require.Error(t, err)

	// The cancelled run ctx must not keep ERROR and END(failed) stuck in
	// the emitter queue.
	types := events.types("msg-1")
	assert.Equal(t, []streaming.EventType{streaming.TypeStart, streaming.TypeError, streaming.TypeEnd}, types)

	all := events.all("msg-1")
	assert.Equal(t, streaming.EndFailed, all[len(all)-1].Status)
	assert.Equal(t, "failed", messages.status)
	assert.Contains(t, messages.errMsg, "cancelled during shutdown")
}

func TestRun_HeartbeatDuringSilence(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	graph := &scriptedGraph{
		steps: []agent.Step{agent.FinalStep{Text: "Done."}},
		delay: 120 * time.Millisecond,
	}
	cfg := testConfig()
	cfg.HeartbeatInterval = 30 * time.Millisecond
	d := newTestDriver(graph, events, messages, &fakeScope{}, cfg)

	require.NoError(t, d.Run(context.Background(), RunParams{ChatID: "chat-1", MessageID: "msg-1", Query: "q"}))

	heartbeats := 0
	for _, evt := range events.all("msg-1") {
		if evt.Type == streaming.TypeStatus {
			heartbeats++
		}
	}
	assert.GreaterOrEqual(t, heartbeats, 1, "a silent graph must still produce liveness STATUS events")
}

func TestRun_BindsTenderScope(t *testing.T) {
	events := newMemoryEventStore()
	messages := &memoryMessageStore{}
	scope := &fakeScope{}
	graph := &scriptedGraph{steps: []agent.Step{agent.FinalStep{Text: "Done."}}}
	d := newTestDriver(graph, events, messages, scope, testConfig())

	require.NoError(t, d.Run(context.Background(), RunParams{
		ChatID: "chat-1", MessageID: "msg-1", Query: "q", TenderID: "tender-1",
	}))
	assert.Equal(t, "tender-1", scope.boundTo)
}
