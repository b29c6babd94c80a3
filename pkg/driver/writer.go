package driver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tendersuite/tenderd/pkg/streaming"
)

// EventStore is the slice of the persistence layer the driver writes
// through. *services.EventService satisfies it.
type EventStore interface {
	Append(ctx context.Context, messageID, chatID string, evt streaming.Event) (streaming.Event, error)
}

// RobustWriter persists events with bounded retries and never raises into
// the driver loop: an event that cannot be written after the retries are
// spent goes onto an in-memory failed list, and FlushFailed gives each one
// a last chance on the driver's way out.
type RobustWriter struct {
	store     EventStore
	messageID string
	chatID    string
	retries   int
	backoff   time.Duration

	mu     sync.Mutex
	failed []streaming.Event
}

// NewRobustWriter creates a writer for one message run. retries is the
// total number of attempts per event; backoff is the linear step between
// them (attempt n waits n*backoff).
func NewRobustWriter(store EventStore, messageID, chatID string, retries int, backoff time.Duration) *RobustWriter {
	if retries < 1 {
		retries = 1
	}
	return &RobustWriter{
		store:     store,
		messageID: messageID,
		chatID:    chatID,
		retries:   retries,
		backoff:   backoff,
	}
}

// Write persists one event. Returns false when every attempt failed and
// the event was parked on the failed list.
func (w *RobustWriter) Write(ctx context.Context, evt streaming.Event) bool {
	var lastErr error
	for attempt := 1; attempt <= w.retries; attempt++ {
		_, err := w.store.Append(ctx, w.messageID, w.chatID, evt)
		if err == nil {
			return true
		}
		lastErr = err
		if attempt < w.retries {
			select {
			case <-time.After(time.Duration(attempt) * w.backoff):
			case <-ctx.Done():
				attempt = w.retries
			}
		}
	}

	slog.Error("Failed to persist event, parking it",
		"message_id", w.messageID, "type", evt.Type, "error", lastErr)
	w.mu.Lock()
	w.failed = append(w.failed, evt)
	w.mu.Unlock()
	return false
}

// FlushFailed retries every parked event once and returns how many made it
// through. Events that fail again stay parked.
func (w *RobustWriter) FlushFailed(ctx context.Context) int {
	w.mu.Lock()
	pending := w.failed
	w.failed = nil
	w.mu.Unlock()

	if len(pending) == 0 {
		return 0
	}

	flushed := 0
	var still []streaming.Event
	for _, evt := range pending {
		if _, err := w.store.Append(ctx, w.messageID, w.chatID, evt); err != nil {
			still = append(still, evt)
			continue
		}
		flushed++
	}

	if len(still) > 0 {
		slog.Error("Events lost after final flush",
			"message_id", w.messageID, "count", len(still))
		w.mu.Lock()
		w.failed = append(still, w.failed...)
		w.mu.Unlock()
	}
	return flushed
}

// FailedCount returns the number of currently parked events.
func (w *RobustWriter) FailedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.failed)
}
