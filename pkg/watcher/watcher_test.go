package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/pkg/streaming"
)

// fakeLog is an in-memory event log with the persistence read contract:
// seq-ordered, cursor-exclusive, malformed cursors replay from the start.
type fakeLog struct {
	mu     sync.Mutex
	events []streaming.Event
}

func (l *fakeLog) append(evtType streaming.EventType, status string) streaming.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	evt := streaming.Event{
		V:    streaming.SchemaVersion,
		Type: evtType,
		ID:   streaming.MintEventID(int64(len(l.events))),
		TS:   time.Now().UTC(),
	}
	evt.Status = status
	l.events = append(l.events, evt)
	return evt
}

func (l *fakeLog) ListEvents(_ context.Context, _ string, sinceID string, limit int) ([]streaming.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sinceSeq := int64(-1)
	if sinceID != "" {
		if seq, err := streaming.ParseEventSeq(sinceID); err == nil {
			sinceSeq = seq
		}
	}

	var out []streaming.Event
	for _, evt := range l.events {
		seq, _ := streaming.ParseEventSeq(evt.ID)
		if seq > sinceSeq {
			out = append(out, evt)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

type fakeRunStatus struct {
	mu      sync.Mutex
	running bool
}

func (f *fakeRunStatus) set(running bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = running
}

func (f *fakeRunStatus) IsRunning(string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func collectSink(mu *sync.Mutex, into *[]streaming.Event) Sink {
	return func(evt streaming.Event) error {
		mu.Lock()
		defer mu.Unlock()
		*into = append(*into, evt)
		return nil
	}
}

func fastConfig() Config {
	return Config{PollInterval: 5 * time.Millisecond, MaxWait: 2 * time.Second}
}

func TestWatch_DeliversHistoryThenTerminatesOnEnd(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	log.append(streaming.TypeThinking, "")
	log.append(streaming.TypeContent, "")
	log.append(streaming.TypeEnd, streaming.EndCompleted)

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{running: false}, fastConfig())

	err := w.Watch(context.Background(), "msg-1", "", collectSink(&mu, &got))
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, streaming.TypeStart, got[0].Type)
	assert.True(t, got[3].Terminal())
}

func TestWatch_PicksUpLiveTail(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	status := &fakeRunStatus{running: true}

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, status, fastConfig())

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(context.Background(), "msg-1", "", collectSink(&mu, &got))
	}()

	time.Sleep(20 * time.Millisecond)
	log.append(streaming.TypeContent, "")
	time.Sleep(20 * time.Millisecond)
	log.append(streaming.TypeEnd, streaming.EndCompleted)
	status.set(false)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not terminate after END")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.True(t, got[2].Terminal())
}

func TestWatch_DeliversBacklogDeeperThanFetchLimit(t *testing.T) {
	// A finished run with a log far past the per-round fetch cap: the
	// watcher must page through to END instead of stopping at the cap.
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	for i := 0; i < 248; i++ {
		log.append(streaming.TypeContent, "")
	}
	log.append(streaming.TypeEnd, streaming.EndCompleted)

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{running: false}, fastConfig())

	err := w.Watch(context.Background(), "msg-1", "", collectSink(&mu, &got))
	require.NoError(t, err)

	require.Len(t, got, 250)
	assert.True(t, got[len(got)-1].Terminal())
	for i, evt := range got {
		seq, err := streaming.ParseEventSeq(evt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}
}

func TestWatch_ResumeCursorSkipsDelivered(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	second := log.append(streaming.TypeThinking, "")
	log.append(streaming.TypeContent, "")
	log.append(streaming.TypeEnd, streaming.EndCompleted)

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{}, fastConfig())

	err := w.Watch(context.Background(), "msg-1", second.ID, collectSink(&mu, &got))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, streaming.TypeContent, got[0].Type)
	assert.Equal(t, streaming.TypeEnd, got[1].Type)
}

func TestWatch_MalformedCursorReplaysAll(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	log.append(streaming.TypeEnd, streaming.EndCompleted)

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{}, fastConfig())

	err := w.Watch(context.Background(), "msg-1", "not-a-cursor", collectSink(&mu, &got))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWatch_AtMostOncePerWatcher(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	log.append(streaming.TypeContent, "")
	log.append(streaming.TypeEnd, streaming.EndCompleted)

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{}, fastConfig())

	require.NoError(t, w.Watch(context.Background(), "msg-1", "", collectSink(&mu, &got)))

	ids := make(map[string]int)
	for _, evt := range got {
		ids[evt.ID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "event %s delivered more than once", id)
	}
}

func TestWatch_RegistryGoneAfterDeliveryTerminates(t *testing.T) {
	// No END was ever written (driver crashed before its terminal event).
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	log.append(streaming.TypeThinking, "")

	var mu sync.Mutex
	var got []streaming.Event
	w := New(log, &fakeRunStatus{running: false}, fastConfig())

	err := w.Watch(context.Background(), "msg-1", "", collectSink(&mu, &got))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWatch_MaxWaitExpires(t *testing.T) {
	// Agent claims to be running forever and writes nothing.
	log := &fakeLog{}
	w := New(log, &fakeRunStatus{running: true}, Config{
		PollInterval: 2 * time.Millisecond,
		MaxWait:      30 * time.Millisecond,
	})

	err := w.Watch(context.Background(), "msg-1", "", func(streaming.Event) error { return nil })
	assert.ErrorIs(t, err, ErrMaxWaitExceeded)
}

func TestWatch_ClientDisconnectStops(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	w := New(log, &fakeRunStatus{running: true}, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, "msg-1", "", func(streaming.Event) error { return nil })
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on disconnect")
	}
}

func TestWatch_SinkErrorStops(t *testing.T) {
	log := &fakeLog{}
	log.append(streaming.TypeStart, "processing")
	w := New(log, &fakeRunStatus{running: true}, fastConfig())

	sinkErr := errors.New("write: broken pipe")
	err := w.Watch(context.Background(), "msg-1", "", func(streaming.Event) error { return sinkErr })
	assert.ErrorIs(t, err, sinkErr)
}
