// Package driver turns the agent graph's step stream into the durable
// event log and the assistant message's lifecycle transitions. A driver
// run is launched through the registry and therefore never dies with the
// HTTP request that started it.
package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/streaming"
)

const drainTimeout = 10 * time.Millisecond

// MessageStore is the slice of the persistence layer that owns the
// assistant message record. *services.MessageService satisfies it.
type MessageStore interface {
	MarkProcessing(ctx context.Context, messageID string) error
	MarkCompleted(ctx context.Context, messageID, content string, processingTimeMs int64) error
	MarkFailed(ctx context.Context, messageID, errMsg string) error
	MarkInterrupted(ctx context.Context, messageID, threadID string, interruptPayload map[string]any) error
	ClearInterrupt(ctx context.Context, messageID string) error
}

// ScopeBinder enforces the single-tender rule for a chat.
// *services.ChatService satisfies it.
type ScopeBinder interface {
	BindTenderScope(ctx context.Context, chatID, tenderID string) error
}

// RunParams is one driver run.
type RunParams struct {
	ChatID    string
	MessageID string
	Query     string

	// TenderID, when non-empty, pins the chat's tender scope.
	TenderID string

	// ThreadID is the graph checkpoint thread, stable per chat.
	ThreadID string

	// FirstTurn marks the chat's first user message; it controls whether
	// the query gets the tender_context wrapper.
	FirstTurn bool

	// Resume, when set, answers a pending interrupt instead of asking a
	// new question.
	Resume *agent.ResumeCommand
}

// Driver executes agent runs. It is stateless across runs and safe to
// share; all per-run state lives on the stack of Run.
type Driver struct {
	events   EventStore
	messages MessageStore
	scope    ScopeBinder
	graph    agent.Graph
	contexts *agent.ContextBuilder
	cfg      config.StreamingConfig
}

// New creates a driver.
func New(events EventStore, messages MessageStore, scope ScopeBinder, graph agent.Graph, contexts *agent.ContextBuilder, cfg config.StreamingConfig) *Driver {
	return &Driver{
		events:   events,
		messages: messages,
		scope:    scope,
		graph:    graph,
		contexts: contexts,
		cfg:      cfg,
	}
}

// Run executes one agent turn to a terminal event. All outcomes are side
// effects on the event log and the message record; the returned error is
// advisory for the registry's task bookkeeping and is never re-surfaced
// to a client directly.
func (d *Driver) Run(ctx context.Context, p RunParams) (err error) {
	start := time.Now()
	logger := slog.With("message_id", p.MessageID, "chat_id", p.ChatID)

	writer := NewRobustWriter(d.events, p.MessageID, p.ChatID, d.cfg.PersistRetries, d.cfg.PersistRetryBackoff)
	defer func() {
		// Last chance for anything the writer had to park. The fresh
		// context matters: ctx may already be cancelled here.
		if n := writer.FlushFailed(context.Background()); n > 0 {
			logger.Info("Flushed parked events on exit", "count", n)
		}
		if lost := writer.FailedCount(); lost > 0 {
			logger.Error("Events lost for this run", "count", lost)
		}
	}()

	emitter := streaming.NewEmitter(p.MessageID, p.ChatID, d.cfg.QueueCapacity)
	emitter.Start()
	defer emitter.Stop()
	ctx = streaming.WithEmitter(ctx, emitter)

	toolCalls := 0
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("agent run panicked: %v", r)
			logger.Error("Driver panic", "panic", r)
			d.fail(ctx, emitter, writer, p.MessageID, msg, &toolCalls)
			err = errors.New(msg)
		}
	}()

	if err := d.messages.MarkProcessing(ctx, p.MessageID); err != nil {
		logger.Error("Failed to mark message processing", "error", err)
	}
	emitter.EmitStart()
	d.drain(ctx, emitter, writer, &toolCalls)

	if p.TenderID != "" {
		if err := d.scope.BindTenderScope(ctx, p.ChatID, p.TenderID); err != nil {
			if errors.Is(err, services.ErrScopeViolation) {
				msg := "This chat is already working on a different tender. Start a new chat for this one."
				d.fail(ctx, emitter, writer, p.MessageID, msg, &toolCalls)
				return err
			}
			logger.Error("Tender scope binding failed", "error", err)
		}
	}

	if p.Resume != nil {
		if err := d.messages.ClearInterrupt(ctx, p.MessageID); err != nil {
			logger.Error("Failed to clear interrupt metadata", "error", err)
		}
	}

	query, files, clusterID := d.contexts.Assemble(p.Query, p.FirstTurn)
	steps, err := d.graph.Stream(ctx, agent.RunInput{
		ThreadID:     p.ThreadID,
		Query:        query,
		ContextFiles: files,
		ClusterID:    clusterID,
		Resume:       p.Resume,
	})
	if err != nil {
		msg := fmt.Sprintf("failed to start agent graph: %v", err)
		d.fail(ctx, emitter, writer, p.MessageID, msg, &toolCalls)
		return err
	}

	var (
		seenSnapshots = make(map[string]struct{})
		finalText     string
		interrupt     *agent.InterruptStep
		streamErr     string
	)

running:
	for {
		select {
		case step, ok := <-steps:
			if !ok {
				break running
			}
			switch s := step.(type) {
			case agent.AssistantStep:
				// THINKING once per snapshot id, and only when the
				// snapshot actually carries text.
				if _, seen := seenSnapshots[s.SnapshotID]; !seen && strings.TrimSpace(s.Text) != "" {
					seenSnapshots[s.SnapshotID] = struct{}{}
					emitter.EmitThinking(s.Text)
				}
			case agent.ToolStartStep:
				summary := streaming.SanitizeToolArgs(s.Name, s.Args)
				emitter.EmitToolStart(s.CallID, s.Name, summary, fmt.Sprintf("%s(%s)", s.Name, summary))
			case agent.ToolEndStep:
				status := streaming.ToolOK
				if s.IsError {
					status = streaming.ToolError
				}
				emitter.EmitToolEnd(s.CallID, s.Name, status, s.DurationMs, streaming.SanitizeToolResult(s.Name, s.Result))
			case agent.PlanStep:
				emitter.EmitPlan(toPlanItems(s.Items))
			case agent.SubagentStartStep:
				emitter.EmitSubagentStart(s.AgentID, s.ParentCallID, s.Description)
			case agent.SubagentEndStep:
				ms := s.DurationMs
				emitter.EmitSubagentEnd(s.AgentID, s.ParentCallID, &ms)
			case agent.InterruptStep:
				interrupt = &s
				break running
			case agent.FinalStep:
				finalText = s.Text
				if s.ToolCalls > toolCalls {
					toolCalls = s.ToolCalls
				}
			case agent.ErrorStep:
				streamErr = s.Message
				break running
			}
			d.drain(ctx, emitter, writer, &toolCalls)

		case <-time.After(d.cfg.HeartbeatInterval):
			elapsed := int(time.Since(start).Seconds())
			emitter.EmitStatus(fmt.Sprintf("Processing... %ds elapsed", elapsed))
			d.drain(ctx, emitter, writer, &toolCalls)

		case <-ctx.Done():
			streamErr = "agent run cancelled during shutdown"
			break running
		}
	}

	if streamErr != "" {
		d.fail(ctx, emitter, writer, p.MessageID, streamErr, &toolCalls)
		return errors.New(streamErr)
	}

	if interrupt != nil {
		return d.finishInterrupted(ctx, emitter, writer, p, interrupt, &toolCalls)
	}

	d.finishCompleted(ctx, emitter, writer, p.MessageID, finalText, start, &toolCalls)
	return nil
}

// drain moves queued events into persistence, in queue order. TOOL_END
// passing through here is what advances the tool-call counter.
func (d *Driver) drain(ctx context.Context, emitter *streaming.Emitter, writer *RobustWriter, toolCalls *int) {
	for {
		evt, ok := emitter.GetNext(ctx, drainTimeout)
		if !ok {
			return
		}
		if evt.Type == streaming.TypeToolEnd {
			*toolCalls++
		}
		writer.Write(ctx, evt)
	}
}

func (d *Driver) finishInterrupted(ctx context.Context, emitter *streaming.Emitter, writer *RobustWriter, p RunParams, interrupt *agent.InterruptStep, toolCalls *int) error {
	// Terminal events must land even when the run ctx is already dead.
	flushCtx := context.Background()
	threadID := interrupt.ThreadID
	if threadID == "" {
		threadID = p.ThreadID
	}

	// The STATUS payload is what the client renders as the question; the
	// message metadata is what the resume endpoint validates against.
	statusPayload := map[string]any{
		"interrupt": true,
		"thread_id": threadID,
	}
	for k, v := range interrupt.Payload {
		statusPayload[k] = v
	}
	payload, err := json.Marshal(statusPayload)
	if err != nil {
		payload = []byte(`{"interrupt":true}`)
	}
	emitter.EmitStatus(string(payload))

	if err := d.messages.MarkInterrupted(ctx, p.MessageID, threadID, interrupt.Payload); err != nil {
		slog.Error("Failed to record interrupt metadata", "message_id", p.MessageID, "error", err)
	}

	emitter.EmitEnd(streaming.EndInterrupted, *toolCalls)
	d.drain(flushCtx, emitter, writer, toolCalls)
	slog.Info("Agent run interrupted, awaiting human input",
		"message_id", p.MessageID, "thread_id", threadID)
	return nil
}

func (d *Driver) finishCompleted(ctx context.Context, emitter *streaming.Emitter, writer *RobustWriter, messageID, finalText string, start time.Time, toolCalls *int) {
	// Terminal events must land even when the run ctx is already dead.
	flushCtx := context.Background()
	if strings.TrimSpace(finalText) != "" {
		emitter.EmitContentStart()
		d.drain(flushCtx, emitter, writer, toolCalls)
		for i, chunk := range chunkWords(finalText, d.cfg.ContentChunkWords) {
			if i > 0 && d.cfg.ContentChunkDelay > 0 {
				time.Sleep(d.cfg.ContentChunkDelay)
			}
			emitter.EmitContent(chunk)
			d.drain(flushCtx, emitter, writer, toolCalls)
		}
		emitter.EmitContentEnd()
		d.drain(flushCtx, emitter, writer, toolCalls)
	}

	emitter.EmitEnd(streaming.EndCompleted, *toolCalls)
	d.drain(flushCtx, emitter, writer, toolCalls)

	elapsedMs := time.Since(start).Milliseconds()
	if err := d.messages.MarkCompleted(ctx, messageID, finalText, elapsedMs); err != nil {
		slog.Error("Failed to mark message completed", "message_id", messageID, "error", err)
	}
	slog.Info("Agent run completed",
		"message_id", messageID, "tool_calls", *toolCalls, "elapsed_ms", elapsedMs)
}

// fail persists ERROR then END(failed) and flips the message record. It is
// the single exit for every failure mode, panics included. The run ctx may
// already be cancelled here (registry shutdown), so the drain runs on a
// detached context; otherwise GetNext can lose the race against ctx.Done
// and the terminal events never leave the queue.
func (d *Driver) fail(ctx context.Context, emitter *streaming.Emitter, writer *RobustWriter, messageID, msg string, toolCalls *int) {
	emitter.EmitError(msg)
	emitter.EmitEnd(streaming.EndFailed, *toolCalls)
	d.drain(context.Background(), emitter, writer, toolCalls)

	if err := d.messages.MarkFailed(ctx, messageID, streaming.SanitizeErrorMessage(msg)); err != nil {
		slog.Error("Failed to mark message failed", "message_id", messageID, "error", err)
	}
}

func toPlanItems(items []agent.PlanItem) []streaming.PlanItem {
	out := make([]streaming.PlanItem, len(items))
	for i, item := range items {
		out[i] = streaming.PlanItem{ID: item.ID, Text: item.Text, Status: item.Status}
	}
	return out
}

// chunkWords splits text into chunks of about n words, keeping a trailing
// space on every chunk but the last so concatenation reproduces the text.
func chunkWords(text string, n int) []string {
	if n <= 0 {
		n = 10
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += n {
		end := start + n
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[start:end], " ")
		if end < len(words) {
			chunk += " "
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
