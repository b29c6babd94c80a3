// Package streaming defines the wire event model for agent runs: the closed
// set of event variants, event ID minting/parsing, the whitelist sanitizer
// and the per-run bounded emitter.
package streaming

import "time"

// SchemaVersion is the wire schema version carried in every event.
const SchemaVersion = 2

// EventType identifies one variant of the closed event set.
type EventType string

const (
	TypeStart         EventType = "start"
	TypeThinking      EventType = "thinking"
	TypePlan          EventType = "plan"
	TypeToolStart     EventType = "tool_start"
	TypeToolEnd       EventType = "tool_end"
	TypeSubagentStart EventType = "subagent_start"
	TypeSubagentEnd   EventType = "subagent_end"
	TypeContentStart  EventType = "content_start"
	TypeContent       EventType = "content"
	TypeContentEnd    EventType = "content_end"
	TypeStatus        EventType = "status"
	// TypeRationale is deprecated. Accepted on read for old event logs,
	// never emitted; new code produces TypeThinking.
	TypeRationale EventType = "rationale"
	TypeEnd       EventType = "end"
	TypeError     EventType = "error"
)

// Terminal statuses carried by END events.
const (
	EndCompleted   = "completed"
	EndInterrupted = "interrupted"
	EndFailed      = "failed"
)

// Tool call outcomes carried by TOOL_END events.
const (
	ToolOK    = "ok"
	ToolError = "error"
)

// Agent kinds carried by THINKING/SUBAGENT/CONTENT events.
const (
	AgentMain     = "main"
	AgentSubagent = "subagent"
)

var knownTypes = map[EventType]struct{}{
	TypeStart: {}, TypeThinking: {}, TypePlan: {}, TypeToolStart: {},
	TypeToolEnd: {}, TypeSubagentStart: {}, TypeSubagentEnd: {},
	TypeContentStart: {}, TypeContent: {}, TypeContentEnd: {},
	TypeStatus: {}, TypeRationale: {}, TypeEnd: {}, TypeError: {},
}

// KnownType reports whether t belongs to the closed variant set.
func KnownType(t EventType) bool {
	_, ok := knownTypes[t]
	return ok
}

// PlanItem is a single item in a PLAN snapshot.
type PlanItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"` // pending, in_progress, completed
}

// Event is one observation of an agent run. The variant fields are flat
// with omitted nulls so the JSON shape matches the v2 wire schema; the
// package constructors are the only sanctioned way to build one.
type Event struct {
	V    int       `json:"v"`
	Type EventType `json:"type"`
	ID   string    `json:"id"`
	TS   time.Time `json:"ts"`

	MessageID string `json:"message_id,omitempty"`
	ChatID    string `json:"chat_id,omitempty"`
	Status    string `json:"status,omitempty"`

	// Agent context for main vs subagent differentiation
	AgentType    string `json:"agent_type,omitempty"`
	AgentID      string `json:"agent_id,omitempty"`
	ParentCallID string `json:"parent_call_id,omitempty"`

	// PLAN
	Items []PlanItem `json:"items,omitempty"`

	// TOOL_START / TOOL_END
	CallID        string `json:"call_id,omitempty"`
	Name          string `json:"name,omitempty"`
	ArgsSummary   string `json:"args_summary,omitempty"`
	ArgsDisplay   string `json:"args_display,omitempty"`
	ResultSummary string `json:"result_summary,omitempty"`
	Ms            *int64 `json:"ms,omitempty"`

	// SUBAGENT_START
	SubagentDescription string `json:"subagent_description,omitempty"`

	// THINKING / RATIONALE / STATUS and CONTENT
	Text string `json:"text,omitempty"`
	MD   string `json:"md,omitempty"`

	// END
	MsTotal   *int64 `json:"ms_total,omitempty"`
	ToolCalls *int   `json:"tool_calls,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Terminal reports whether this event closes the stream for its message.
func (e Event) Terminal() bool {
	return e.Type == TypeEnd
}

func newEvent(t EventType) Event {
	return Event{
		V:    SchemaVersion,
		Type: t,
		TS:   time.Now().UTC(),
	}
}

// NewStartEvent creates a START event.
func NewStartEvent(messageID, chatID string) Event {
	e := newEvent(TypeStart)
	e.MessageID = messageID
	e.ChatID = chatID
	e.Status = "processing"
	return e
}

// NewPlanEvent creates a PLAN snapshot event.
func NewPlanEvent(items []PlanItem) Event {
	e := newEvent(TypePlan)
	e.Items = items
	return e
}

// NewThinkingEvent creates a THINKING event carrying agent reasoning text.
func NewThinkingEvent(text, agentType, agentID, parentCallID string) Event {
	e := newEvent(TypeThinking)
	e.Text = text
	e.AgentType = agentType
	e.AgentID = agentID
	e.ParentCallID = parentCallID
	return e
}

// NewToolStartEvent creates a TOOL_START event. argsSummary must already be
// sanitized; argsDisplay falls back to the tool name when empty.
func NewToolStartEvent(callID, name, argsSummary, argsDisplay string) Event {
	e := newEvent(TypeToolStart)
	e.CallID = callID
	e.Name = name
	e.ArgsSummary = argsSummary
	if argsDisplay == "" {
		argsDisplay = name
	}
	e.ArgsDisplay = argsDisplay
	return e
}

// NewToolEndEvent creates a TOOL_END event paired with an earlier
// TOOL_START via callID.
func NewToolEndEvent(callID, name, status string, ms int64, resultSummary string) Event {
	e := newEvent(TypeToolEnd)
	e.CallID = callID
	e.Name = name
	e.Status = status
	e.Ms = &ms
	e.ResultSummary = resultSummary
	return e
}

// NewSubagentStartEvent creates a SUBAGENT_START event.
func NewSubagentStartEvent(agentID, parentCallID, description string) Event {
	e := newEvent(TypeSubagentStart)
	e.AgentType = AgentSubagent
	e.AgentID = agentID
	e.ParentCallID = parentCallID
	e.SubagentDescription = description
	return e
}

// NewSubagentEndEvent creates a SUBAGENT_END event.
func NewSubagentEndEvent(agentID, parentCallID string, ms *int64) Event {
	e := newEvent(TypeSubagentEnd)
	e.AgentType = AgentSubagent
	e.AgentID = agentID
	e.ParentCallID = parentCallID
	e.Ms = ms
	return e
}

// NewContentStartEvent creates a CONTENT_START event.
func NewContentStartEvent(agentType, agentID string) Event {
	e := newEvent(TypeContentStart)
	e.AgentType = agentType
	e.AgentID = agentID
	return e
}

// NewContentEvent creates a CONTENT chunk event.
func NewContentEvent(md string) Event {
	e := newEvent(TypeContent)
	e.MD = md
	return e
}

// NewContentEndEvent creates a CONTENT_END event.
func NewContentEndEvent(agentType, agentID string) Event {
	e := newEvent(TypeContentEnd)
	e.AgentType = agentType
	e.AgentID = agentID
	return e
}

// NewStatusEvent creates a STATUS heartbeat event. STATUS is the only
// variant the emitter may drop under queue pressure.
func NewStatusEvent(text string) Event {
	e := newEvent(TypeStatus)
	e.Text = text
	return e
}

// NewEndEvent creates the terminal END event.
func NewEndEvent(status string, msTotal int64, toolCalls int) Event {
	e := newEvent(TypeEnd)
	e.Status = status
	e.MsTotal = &msTotal
	e.ToolCalls = &toolCalls
	return e
}

// NewErrorEvent creates an ERROR event. msg must already be sanitized.
func NewErrorEvent(msg string) Event {
	e := newEvent(TypeError)
	e.Error = msg
	return e
}
