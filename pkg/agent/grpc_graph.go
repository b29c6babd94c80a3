package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	agentv1 "github.com/tendersuite/tenderd/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCGraph implements Graph by calling the agent-graph sidecar via gRPC.
type GRPCGraph struct {
	conn   *grpc.ClientConn
	client agentv1.AgentGraphClient
}

// NewGRPCGraph creates a new gRPC graph client.
func NewGRPCGraph(addr string) (*GRPCGraph, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent graph at %s: %w", addr, err)
	}
	return &GRPCGraph{
		conn:   conn,
		client: agentv1.NewAgentGraphClient(conn),
	}, nil
}

// Stream starts one turn on the sidecar and adapts its server stream into
// a Step channel. A stream-level receive error becomes a terminal
// ErrorStep rather than an abrupt close.
func (g *GRPCGraph) Stream(ctx context.Context, input RunInput) (<-chan Step, error) {
	stream, err := g.client.Run(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Run call failed: %w", err)
	}

	ch := make(chan Step, 32)
	go func() {
		defer close(ch)
		for {
			update, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- ErrorStep{Message: err.Error()}:
				case <-ctx.Done():
				}
				return
			}
			step := fromProtoUpdate(update)
			if step != nil {
				select {
				case ch <- step:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (g *GRPCGraph) Close() error {
	return g.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoRequest(input RunInput) *agentv1.RunRequest {
	req := &agentv1.RunRequest{
		ThreadId:     input.ThreadID,
		Query:        input.Query,
		ContextFiles: input.ContextFiles,
		ClusterId:    input.ClusterID,
	}
	if input.Resume != nil {
		req.Resume = &agentv1.ResumeCommand{
			Action:  input.Resume.Action,
			Content: input.Resume.Content,
		}
	}
	return req
}

func fromProtoUpdate(update *agentv1.StepUpdate) Step {
	switch u := update.Update.(type) {
	case *agentv1.StepUpdate_Assistant:
		return AssistantStep{
			SnapshotID:   u.Assistant.SnapshotId,
			Text:         u.Assistant.Text,
			HasToolCalls: u.Assistant.HasToolCalls,
		}
	case *agentv1.StepUpdate_ToolStart:
		return ToolStartStep{
			CallID: u.ToolStart.CallId,
			Name:   u.ToolStart.Name,
			Args:   decodeArgs(u.ToolStart.CallId, u.ToolStart.ArgumentsJson),
		}
	case *agentv1.StepUpdate_ToolEnd:
		return ToolEndStep{
			CallID:     u.ToolEnd.CallId,
			Name:       u.ToolEnd.Name,
			Result:     u.ToolEnd.Result,
			IsError:    u.ToolEnd.IsError,
			DurationMs: u.ToolEnd.DurationMs,
		}
	case *agentv1.StepUpdate_Plan:
		items := make([]PlanItem, len(u.Plan.Items))
		for i, item := range u.Plan.Items {
			items[i] = PlanItem{ID: item.Id, Text: item.Text, Status: item.Status}
		}
		return PlanStep{Items: items}
	case *agentv1.StepUpdate_SubagentStart:
		return SubagentStartStep{
			AgentID:      u.SubagentStart.AgentId,
			ParentCallID: u.SubagentStart.ParentCallId,
			Description:  u.SubagentStart.Description,
		}
	case *agentv1.StepUpdate_SubagentEnd:
		return SubagentEndStep{
			AgentID:      u.SubagentEnd.AgentId,
			ParentCallID: u.SubagentEnd.ParentCallId,
			DurationMs:   u.SubagentEnd.DurationMs,
		}
	case *agentv1.StepUpdate_Interrupt:
		return InterruptStep{
			ThreadID: u.Interrupt.ThreadId,
			Payload:  decodePayload(u.Interrupt.PayloadJson),
		}
	case *agentv1.StepUpdate_Final:
		return FinalStep{
			Text:      u.Final.Text,
			ToolCalls: int(u.Final.ToolCalls),
		}
	default:
		return nil
	}
}

func decodeArgs(callID, argsJSON string) map[string]any {
	if argsJSON == "" {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		slog.Warn("Undecodable tool arguments", "call_id", callID, "error", err)
		return nil
	}
	return args
}

func decodePayload(payloadJSON string) map[string]any {
	if payloadJSON == "" {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		// Keep the raw text so the client still sees something renderable.
		return map[string]any{"raw": payloadJSON}
	}
	return payload
}
