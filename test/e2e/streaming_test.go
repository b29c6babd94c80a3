package e2e

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/streaming"
)

func eventTypes(events []streaming.Event) []string {
	types := make([]string, len(events))
	for i, evt := range events {
		types[i] = string(evt.Type)
	}
	return types
}

// requireDenseSeqs asserts the event ids carry contiguous sequence numbers
// starting at from.
func requireDenseSeqs(t *testing.T, events []streaming.Event, from int64) {
	t.Helper()
	for i, evt := range events {
		seq, err := streaming.ParseEventSeq(evt.ID)
		require.NoError(t, err, "event %d has malformed id %q", i, evt.ID)
		require.Equal(t, from+int64(i), seq, "gap or reorder at event %d", i)
	}
}

func concatContent(events []streaming.Event) string {
	var b strings.Builder
	for _, evt := range events {
		if evt.Type == streaming.TypeContent {
			b.WriteString(evt.MD)
		}
	}
	return b.String()
}

func TestStream_HappyPath(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(agent.FinalStep{Text: "Hi there"})

	chatID := app.CreateChat("greeting")
	messageID := app.PostMessage(chatID, "Hi", nil)

	stream := openStream(t, app, chatID, messageID, "")
	events := stream.CollectUntilEnd(t)

	types := eventTypes(events)
	require.Equal(t, "start", types[0])
	require.Equal(t, "end", types[len(types)-1])
	assert.Contains(t, types, "content_start")
	assert.Contains(t, types, "content_end")
	assert.Equal(t, "Hi there", concatContent(events))
	requireDenseSeqs(t, events, 0)

	end := events[len(events)-1]
	assert.Equal(t, streaming.EndCompleted, end.Status)
	require.NotNil(t, end.ToolCalls)
	assert.Equal(t, 0, *end.ToolCalls)

	msg := app.GetMessage(chatID, messageID)
	require.Eventually(t, func() bool {
		msg = app.GetMessage(chatID, messageID)
		return msg["status"] == "completed"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "Hi there", msg["content"])
}

func TestStream_TwoWatchersSeeIdenticalSequences(t *testing.T) {
	app := newTestApp(t)
	app.Graph.SetStepDelay(80 * time.Millisecond)
	app.Graph.Enqueue(
		agent.AssistantStep{SnapshotID: "s1", Text: "Looking at the tender requirements."},
		agent.AssistantStep{SnapshotID: "s2", Text: "Drafting the comparison."},
		agent.FinalStep{Text: "Supplier A offers better terms than supplier B on delivery."},
	)

	chatID := app.CreateChat("fan-out")
	messageID := app.PostMessage(chatID, "Compare the suppliers", nil)

	first := openStream(t, app, chatID, messageID, "")
	time.Sleep(120 * time.Millisecond) // attach mid-run
	second := openStream(t, app, chatID, messageID, "")

	firstEvents := first.CollectUntilEnd(t)
	secondEvents := second.CollectUntilEnd(t)

	requireDenseSeqs(t, firstEvents, 0)
	requireDenseSeqs(t, secondEvents, 0)

	firstIDs := make([]string, len(firstEvents))
	for i, evt := range firstEvents {
		firstIDs[i] = evt.ID
	}
	secondIDs := make([]string, len(secondEvents))
	for i, evt := range secondEvents {
		secondIDs[i] = evt.ID
	}
	assert.Equal(t, firstIDs, secondIDs, "late watcher must replay to the same full sequence")
}

func TestStream_ReconnectResumesAfterLastEventID(t *testing.T) {
	app := newTestApp(t)
	// Enough words that the log runs well past seq 7.
	app.Graph.Enqueue(agent.FinalStep{
		Text: "The tender requires ISO certification proof of delivery capacity and three reference projects from comparable contracts",
	})

	chatID := app.CreateChat("reconnect")
	messageID := app.PostMessage(chatID, "Summarize the requirements", nil)

	all := app.WaitForTerminal(messageID)
	require.Greater(t, len(all), 9, "need events past seq 7 for this scenario")
	requireDenseSeqs(t, all, 0)
	cursor := all[7] // id carries seq 7

	stream := openStream(t, app, chatID, messageID, cursor.ID)
	replayed := stream.CollectUntilEnd(t)

	requireDenseSeqs(t, replayed, 8)
	assert.Equal(t, len(all)-8, len(replayed), "must receive exactly seq 8..END once")
	assert.True(t, replayed[len(replayed)-1].Terminal())
}

func TestStream_ToolPipeline(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(
		agent.ToolStartStep{
			CallID: "call-1",
			Name:   "search_tender_corpus",
			Args:   map[string]any{"query": "X", "api_key": "sk-should-never-appear"},
		},
		agent.ToolEndStep{
			CallID:     "call-1",
			Name:       "search_tender_corpus",
			Result:     "Found 3 results in the corpus",
			DurationMs: 42,
		},
		agent.FinalStep{Text: "Three sections are relevant.", ToolCalls: 1},
	)

	chatID := app.CreateChat("tools")
	messageID := app.PostMessage(chatID, "Search for X", nil)

	stream := openStream(t, app, chatID, messageID, "")
	events := stream.CollectUntilEnd(t)

	var toolStart, toolEnd *streaming.Event
	for i := range events {
		switch events[i].Type {
		case streaming.TypeToolStart:
			toolStart = &events[i]
		case streaming.TypeToolEnd:
			toolEnd = &events[i]
		}
	}
	require.NotNil(t, toolStart)
	require.NotNil(t, toolEnd)

	assert.Equal(t, "search_tender_corpus", toolStart.Name)
	assert.Equal(t, "query='X'", toolStart.ArgsSummary)
	assert.NotContains(t, toolStart.ArgsSummary, "sk-should-never-appear")

	assert.Equal(t, toolStart.CallID, toolEnd.CallID)
	assert.Equal(t, streaming.ToolOK, toolEnd.Status)
	assert.Equal(t, "Found 3 results", toolEnd.ResultSummary)
	require.NotNil(t, toolEnd.Ms)
	assert.Equal(t, int64(42), *toolEnd.Ms)

	end := events[len(events)-1]
	require.NotNil(t, end.ToolCalls)
	assert.Equal(t, 1, *end.ToolCalls)
}

func TestStream_InterruptAndResume(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(agent.InterruptStep{
		Payload: map[string]any{"question": "Overwrite report.md?"},
	})

	chatID := app.CreateChat("hitl")
	messageID := app.PostMessage(chatID, "Write the report", nil)

	stream := openStream(t, app, chatID, messageID, "")
	events := stream.CollectUntilEnd(t)

	end := events[len(events)-1]
	assert.Equal(t, streaming.EndInterrupted, end.Status)

	require.GreaterOrEqual(t, len(events), 3)
	status := events[len(events)-2]
	require.Equal(t, streaming.TypeStatus, status.Type)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(status.Text), &payload))
	assert.Equal(t, true, payload["interrupt"])
	assert.Equal(t, "Overwrite report.md?", payload["question"])
	assert.Equal(t, chatID, payload["thread_id"], "fresh runs thread on the chat id")

	// The message is parked, not terminal.
	var msg map[string]any
	require.Eventually(t, func() bool {
		msg = app.GetMessage(chatID, messageID)
		metadata, _ := msg["metadata"].(map[string]any)
		return metadata != nil && metadata["interrupted"] == true
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "processing", msg["status"])
	metadata := msg["metadata"].(map[string]any)
	assert.Equal(t, chatID, metadata["thread_id"])

	// Answer the interrupt; the resumed run appends to the same log.
	app.Graph.Enqueue(agent.FinalStep{Text: "Report written."})
	resp := app.Resume(chatID, messageID, "accept", "")
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resumed := openStream(t, app, chatID, messageID, end.ID)
	resumedEvents := resumed.CollectUntilEnd(t)
	requireDenseSeqs(t, resumedEvents, int64(len(events)))
	assert.Equal(t, "start", string(resumedEvents[0].Type))
	assert.Equal(t, streaming.EndCompleted, resumedEvents[len(resumedEvents)-1].Status)
	assert.Equal(t, "Report written.", concatContent(resumedEvents))

	input := app.Graph.LastInput()
	require.NotNil(t, input.Resume)
	assert.Equal(t, "accept", input.Resume.Action)
	assert.Equal(t, chatID, input.ThreadID)
}

func TestStream_ResumeWithoutInterruptConflicts(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(agent.FinalStep{Text: "Done."})

	chatID := app.CreateChat("no-interrupt")
	messageID := app.PostMessage(chatID, "Hello", nil)
	app.WaitForTerminal(messageID)

	resp := app.Resume(chatID, messageID, "accept", "")
	defer resp.Body.Close()
	assert.Equal(t, 409, resp.StatusCode)
}

func TestStream_FatalErrorEndsFailed(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(agent.ErrorStep{Message: "model quota exhausted"})

	chatID := app.CreateChat("failure")
	messageID := app.PostMessage(chatID, "Analyze", nil)

	stream := openStream(t, app, chatID, messageID, "")
	events := stream.CollectUntilEnd(t)

	types := eventTypes(events)
	require.Equal(t, "start", types[0])
	require.Contains(t, types, "error")
	end := events[len(events)-1]
	assert.Equal(t, streaming.EndFailed, end.Status)

	var errEvt streaming.Event
	for _, evt := range events {
		if evt.Type == streaming.TypeError {
			errEvt = evt
		}
	}
	assert.Equal(t, "model quota exhausted", errEvt.Error)

	var msg map[string]any
	require.Eventually(t, func() bool {
		msg = app.GetMessage(chatID, messageID)
		return msg["status"] == "failed"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "model quota exhausted", msg["error"])
}

func TestStream_TenderScopeViolation(t *testing.T) {
	app := newTestApp(t)
	app.Graph.Enqueue(agent.FinalStep{Text: "Scoped answer."})

	chatID := app.CreateChat("scoped")
	first := app.PostMessage(chatID, "Analyze tender A", map[string]any{"tender_id": "tender-a"})
	app.WaitForTerminal(first)

	// Second turn tries to drag the chat onto another tender. The request
	// itself succeeds; the run fails through the event log.
	second := app.PostMessage(chatID, "Now tender B", map[string]any{"tender_id": "tender-b"})
	events := app.WaitForTerminal(second)

	assert.Equal(t, []string{"start", "error", "end"}, eventTypes(events))
	assert.Equal(t, streaming.EndFailed, events[len(events)-1].Status)
	assert.Contains(t, events[1].Error, "already working on a different tender")
}
