package e2e

import (
	"context"
	"sync"
	"time"

	"github.com/tendersuite/tenderd/pkg/agent"
)

// ScriptedGraph replaces the gRPC sidecar with pre-scripted step streams.
// Each Stream call consumes the next enqueued script; an empty queue plays
// an empty turn. Inputs are recorded for assertions.
type ScriptedGraph struct {
	mu        sync.Mutex
	scripts   [][]agent.Step
	stepDelay time.Duration
	inputs    []agent.RunInput
}

// NewScriptedGraph creates an empty scripted graph.
func NewScriptedGraph() *ScriptedGraph {
	return &ScriptedGraph{}
}

// Enqueue adds one turn's worth of steps.
func (g *ScriptedGraph) Enqueue(steps ...agent.Step) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scripts = append(g.scripts, steps)
}

// SetStepDelay inserts a pause before each step, to keep a run alive long
// enough for watcher-attachment tests.
func (g *ScriptedGraph) SetStepDelay(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stepDelay = d
}

// LastInput returns the most recent RunInput handed to Stream.
func (g *ScriptedGraph) LastInput() agent.RunInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.inputs) == 0 {
		return agent.RunInput{}
	}
	return g.inputs[len(g.inputs)-1]
}

// Stream implements agent.Graph.
func (g *ScriptedGraph) Stream(ctx context.Context, input agent.RunInput) (<-chan agent.Step, error) {
	g.mu.Lock()
	g.inputs = append(g.inputs, input)
	var script []agent.Step
	if len(g.scripts) > 0 {
		script = g.scripts[0]
		g.scripts = g.scripts[1:]
	}
	delay := g.stepDelay
	g.mu.Unlock()

	ch := make(chan agent.Step)
	go func() {
		defer close(ch)
		for _, step := range script {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
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
