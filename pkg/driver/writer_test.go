package driver

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

// flakyStore fails the first failN appends, then succeeds.
type flakyStore struct {
	mu       sync.Mutex
	failN    int
	attempts int
	appended []streaming.Event
}

func (s *flakyStore) Append(_ context.Context, messageID, chatID string, evt streaming.Event) (streaming.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.attempts <= s.failN {
		return streaming.Event{}, errors.New("connection refused")
	}
	evt.MessageID = messageID
	evt.ChatID = chatID
	s.appended = append(s.appended, evt)
	return evt, nil
}

func TestRobustWriter_RetriesThenSucceeds(t *testing.T) {
	store := &flakyStore{failN: 2}
	w := NewRobustWriter(store, "msg-1", "chat-1", 3, time.Millisecond)

	ok := w.Write(context.Background(), streaming.NewStatusEvent("tick"))
	assert.True(t, ok)
	assert.Equal(t, 3, store.attempts)
	assert.Len(t, store.appended, 1)
	assert.Zero(t, w.FailedCount())
}

func TestRobustWriter_ParksAfterExhaustion(t *testing.T) {
	store := &flakyStore{failN: 100}
	w := NewRobustWriter(store, "msg-1", "chat-1", 3, time.Millisecond)

	ok := w.Write(context.Background(), streaming.NewStatusEvent("tick"))
	assert.False(t, ok)
	assert.Equal(t, 3, store.attempts)
	assert.Equal(t, 1, w.FailedCount())
}

func TestRobustWriter_FlushFailed(t *testing.T) {
	store := &flakyStore{failN: 100}
	w := NewRobustWriter(store, "msg-1", "chat-1", 2, time.Millisecond)

	require.False(t, w.Write(context.Background(), streaming.NewStatusEvent("one")))
	require.False(t, w.Write(context.Background(), streaming.NewContentEvent("two")))
	require.Equal(t, 2, w.FailedCount())

	// Store recovers; the flush drains the parked list.
	store.mu.Lock()
	store.failN = 0
	store.attempts = 0
	store.mu.Unlock()

	flushed := w.FlushFailed(context.Background())
	assert.Equal(t, 2, flushed)
	assert.Zero(t, w.FailedCount())
	assert.Len(t, store.appended, 2)
}

func TestRobustWriter_FlushKeepsStillFailing(t *testing.T) {
	store := &flakyStore{failN: 100}
	w := NewRobustWriter(store, "msg-1", "chat-1", 1, time.Millisecond)

	require.False(t, w.Write(context.Background(), streaming.NewStatusEvent("one")))

	flushed := w.FlushFailed(context.Background())
	assert.Zero(t, flushed)
	assert.Equal(t, 1, w.FailedCount())
}
