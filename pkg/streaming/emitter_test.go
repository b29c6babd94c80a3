package streaming

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveEmitter(capacity int) *Emitter {
	e := NewEmitter("msg-1", "chat-1", capacity)
	e.Start()
	return e
}

func TestEmitter_FIFO(t *testing.T) {
	e := newActiveEmitter(10)
	ctx := context.Background()

	require.True(t, e.EmitStart())
	require.True(t, e.EmitThinking("considering the question"))
	require.True(t, e.EmitStatus("Processing..."))

	first, ok := e.GetNext(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, TypeStart, first.Type)

	second, ok := e.GetNext(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, TypeThinking, second.Type)

	third, ok := e.GetNext(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, TypeStatus, third.Type)
}

func TestEmitter_InactiveDropsEverything(t *testing.T) {
	e := NewEmitter("msg-1", "chat-1", 10)

	assert.False(t, e.EmitStart())
	assert.Equal(t, 0, e.EventCount())

	e.Start()
	assert.True(t, e.EmitStart())
	e.Stop()
	assert.False(t, e.EmitStatus("late"))
	assert.Equal(t, 1, e.EventCount())
}

func TestEmitter_DropPolicy(t *testing.T) {
	e := newActiveEmitter(2)

	require.True(t, e.EmitThinking("one"))
	require.True(t, e.EmitThinking("two"))

	// Queue full: STATUS is droppable, anything else is an anomaly.
	assert.False(t, e.EmitStatus("heartbeat"))
	assert.Equal(t, int64(1), e.DroppedStatusCount())
	assert.Equal(t, int64(0), e.DroppedCriticalCount())

	assert.False(t, e.EmitThinking("three"))
	assert.Equal(t, int64(1), e.DroppedCriticalCount())

	// Buffer still records dropped events; durability is not the queue's job.
	assert.Equal(t, 4, e.EventCount())
}

func TestEmitter_GetNextTimeout(t *testing.T) {
	e := newActiveEmitter(4)

	start := time.Now()
	_, ok := e.GetNext(context.Background(), 20*time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestEmitter_GetNextHonorsContext(t *testing.T) {
	e := newActiveEmitter(4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := e.GetNext(ctx, time.Minute)
	assert.False(t, ok)
}

func TestEmitter_ProvisionalIDsCarrySequence(t *testing.T) {
	e := newActiveEmitter(10)

	e.EmitStart()
	e.EmitThinking("a")
	e.EmitThinking("b")

	for i, evt := range e.BufferedEvents() {
		seq, err := ParseEventSeq(evt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestEmitter_EndCarriesElapsedAndToolCalls(t *testing.T) {
	e := newActiveEmitter(10)

	require.True(t, e.EmitEnd(EndCompleted, 3))

	evt, ok := e.GetNext(context.Background(), time.Second)
	require.True(t, ok)
	assert.Equal(t, TypeEnd, evt.Type)
	assert.Equal(t, EndCompleted, evt.Status)
	require.NotNil(t, evt.ToolCalls)
	assert.Equal(t, 3, *evt.ToolCalls)
	require.NotNil(t, evt.MsTotal)
	assert.GreaterOrEqual(t, *evt.MsTotal, int64(0))
}

func TestEmitterContext(t *testing.T) {
	e := NewEmitter("msg-1", "chat-1", 4)

	ctx := WithEmitter(context.Background(), e)
	assert.Same(t, e, EmitterFromContext(ctx))
	assert.Nil(t, EmitterFromContext(context.Background()))
}

func TestEmitter_EmitError_Sanitizes(t *testing.T) {
	e := newActiveEmitter(4)

	require.True(t, e.EmitError("open /etc/tenderd/creds.json: denied\nstack trace"))

	evt, ok := e.GetNext(context.Background(), time.Second)
	require.True(t, ok)
	assert.Equal(t, "creds.json: denied", evt.Error)
}
