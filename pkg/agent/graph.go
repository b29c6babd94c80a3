// Package agent defines the contract with the tender agent graph and the
// gRPC adapter to the sidecar that runs it. The graph produces a stream
// of step updates; the driver translates those into the event log.
package agent

import (
	"context"
)

// RunInput is one conversational turn handed to the graph.
type RunInput struct {
	// ThreadID identifies the graph checkpoint thread. It is stable for
	// the life of a chat and required to resume an interrupted turn.
	ThreadID string

	// Query is the user's message, possibly enhanced with tender context.
	Query string

	// ContextFiles seed the graph's virtual filesystem, path -> contents.
	ContextFiles map[string]string

	ClusterID string

	// Resume, when set, resumes an interrupted turn instead of starting
	// a fresh one.
	Resume *ResumeCommand
}

// ResumeCommand answers a human-in-the-loop interrupt.
type ResumeCommand struct {
	Action  string // accept, edit, respond, ignore
	Content string
}

// Step is one update from the graph's step stream.
type Step interface {
	isStep()
}

// AssistantStep is a snapshot of the graph's latest assistant message.
// SnapshotID is the graph-internal message id used for deduplication.
type AssistantStep struct {
	SnapshotID   string
	Text         string
	HasToolCalls bool
}

// ToolStartStep reports a tool call beginning. Args are the raw tool
// arguments; they must be sanitized before leaving the process.
type ToolStartStep struct {
	CallID string
	Name   string
	Args   map[string]any
}

// ToolEndStep reports a tool call finishing.
type ToolEndStep struct {
	CallID     string
	Name       string
	Result     string
	IsError    bool
	DurationMs int64
}

// PlanStep is a snapshot of the agent's todo plan.
type PlanStep struct {
	Items []PlanItem
}

// PlanItem mirrors one entry of the agent's plan.
type PlanItem struct {
	ID     string
	Text   string
	Status string
}

// SubagentStartStep reports a delegated sub-agent starting.
type SubagentStartStep struct {
	AgentID      string
	ParentCallID string
	Description  string
}

// SubagentEndStep reports a delegated sub-agent finishing.
type SubagentEndStep struct {
	AgentID      string
	ParentCallID string
	DurationMs   int64
}

// InterruptStep pauses the turn for human input. The turn can be resumed
// later with the same thread id.
type InterruptStep struct {
	ThreadID string
	Payload  map[string]any
}

// FinalStep carries the turn's final assistant text.
type FinalStep struct {
	Text      string
	ToolCalls int
}

// ErrorStep surfaces a stream-level failure from the sidecar.
type ErrorStep struct {
	Message string
}

func (AssistantStep) isStep()     {}
func (ToolStartStep) isStep()     {}
func (ToolEndStep) isStep()       {}
func (PlanStep) isStep()          {}
func (SubagentStartStep) isStep() {}
func (SubagentEndStep) isStep()   {}
func (InterruptStep) isStep()     {}
func (FinalStep) isStep()         {}
func (ErrorStep) isStep()         {}

// Graph runs tender analysis turns. Stream returns a channel that is
// closed when the turn is over; the last meaningful step is a FinalStep,
// an InterruptStep, or an ErrorStep.
type Graph interface {
	Stream(ctx context.Context, input RunInput) (<-chan Step, error)
}
