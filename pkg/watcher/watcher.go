// Package watcher serves one connected client per watcher by polling the
// durable event log. Watchers never read from the emitter; a slow client
// can therefore never back-pressure the driver.
package watcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tendersuite/tenderd/pkg/streaming"
)

// fetchLimit caps how many events one poll round reads.
const fetchLimit = 100

// dedupCapacity bounds the delivered-id set. The strictly increasing
// cursor already prevents redelivery; the set is a second line of defense
// against store anomalies.
const dedupCapacity = 1024

// ErrMaxWaitExceeded is returned when a watcher outlives its cooperative
// timeout without seeing a terminal event.
var ErrMaxWaitExceeded = errors.New("watcher exceeded max wait")

// EventSource is the slice of persistence a watcher reads.
// *services.EventService satisfies it.
type EventSource interface {
	ListEvents(ctx context.Context, messageID, sinceID string, limit int) ([]streaming.Event, error)
}

// RunStatus answers the advisory is-the-agent-still-running question.
// *registry.Registry satisfies it.
type RunStatus interface {
	IsRunning(messageID string) bool
}

// Sink receives each event exactly once for this watcher. An error from
// the sink means the client is gone and stops the watcher.
type Sink func(evt streaming.Event) error

// Config tunes a watcher's polling loop.
type Config struct {
	PollInterval time.Duration
	MaxWait      time.Duration
}

// Watcher polls events for connected clients. One Watcher value is shared;
// each Watch call is an independent loop.
type Watcher struct {
	events   EventSource
	registry RunStatus
	cfg      Config
}

// New creates a watcher.
func New(events EventSource, registry RunStatus, cfg Config) *Watcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = time.Hour
	}
	return &Watcher{events: events, registry: registry, cfg: cfg}
}

// Watch streams a message's events to sink until a terminal condition:
// an END event (any status), the registry reporting the agent gone after
// at least one delivery, the cooperative max-wait timeout, or ctx ending
// (client disconnect). A non-empty sinceID resumes after that event;
// malformed cursors replay from the beginning.
func (w *Watcher) Watch(ctx context.Context, messageID, sinceID string, sink Sink) error {
	logger := slog.With("message_id", messageID)
	deadline := time.Now().Add(w.cfg.MaxWait)
	seen := newDedupSet(dedupCapacity)
	delivered := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Advisory only: the registry flip can race the tail writes, so a
		// not-running answer still gets one final drain below.
		running := w.registry.IsRunning(messageID)

		sawEnd, err := w.drain(ctx, messageID, &sinceID, seen, &delivered, sink)
		if err != nil {
			return err
		}

		if sawEnd {
			_, err := w.drain(ctx, messageID, &sinceID, seen, &delivered, sink)
			return err
		}
		if !running && delivered > 0 {
			_, err := w.drain(ctx, messageID, &sinceID, seen, &delivered, sink)
			return err
		}
		if time.Now().After(deadline) {
			logger.Warn("Watcher timed out", "delivered", delivered)
			return ErrMaxWaitExceeded
		}

		select {
		case <-time.After(w.cfg.PollInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drain runs fetch rounds until the log is exhausted. A full batch means
// more rows may be waiting behind the fetch cap, so the round repeats with
// the advanced cursor; a short batch (or an END) means the cursor caught
// up. A watcher attaching to a long-finished run must never stop short of
// the terminal event, however deep the backlog.
func (w *Watcher) drain(ctx context.Context, messageID string, sinceID *string, seen *dedupSet, delivered *int, sink Sink) (bool, error) {
	for {
		sawEnd, n, err := w.pass(ctx, messageID, sinceID, seen, delivered, sink)
		if err != nil || sawEnd {
			return sawEnd, err
		}
		if n < fetchLimit {
			return false, nil
		}
	}
}

// pass runs one fetch-and-deliver round, reporting whether it delivered a
// terminal END and how many rows the fetch returned. Transient read errors
// are swallowed; the next round retries from the same cursor.
func (w *Watcher) pass(ctx context.Context, messageID string, sinceID *string, seen *dedupSet, delivered *int, sink Sink) (bool, int, error) {
	batch, err := w.events.ListEvents(ctx, messageID, *sinceID, fetchLimit)
	if err != nil {
		slog.Warn("Watcher read failed, will retry", "message_id", messageID, "error", err)
		return false, 0, nil
	}

	sawEnd := false
	for _, evt := range batch {
		if seen.has(evt.ID) {
			*sinceID = evt.ID
			continue
		}
		if err := sink(evt); err != nil {
			return sawEnd, len(batch), err
		}
		seen.add(evt.ID)
		*sinceID = evt.ID
		*delivered++
		if evt.Terminal() {
			sawEnd = true
		}
	}
	return sawEnd, len(batch), nil
}

// dedupSet is a FIFO-bounded membership set.
type dedupSet struct {
	capacity int
	order    []string
	members  map[string]struct{}
}

func newDedupSet(capacity int) *dedupSet {
	return &dedupSet{
		capacity: capacity,
		members:  make(map[string]struct{}, capacity),
	}
}

func (s *dedupSet) has(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *dedupSet) add(id string) {
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.members, oldest)
	}
	s.order = append(s.order, id)
	s.members[id] = struct{}{}
}
