package services

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tendersuite/tenderd/ent"
	"github.com/tendersuite/tenderd/ent/messagecounter"
	"github.com/tendersuite/tenderd/ent/messageevent"
	"github.com/tendersuite/tenderd/pkg/streaming"
)

const (
	defaultListLimit = 1000
	maxListLimit     = 10000

	appendAttempts    = 3
	appendBaseBackoff = 100 * time.Millisecond
)

// EventService owns the durable per-message event log: atomic sequence
// allocation, append, replay reads and retention. It is the single source
// of truth watchers read from.
type EventService struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewEventService creates a new EventService. db is the raw pool from
// database.Client.DB(), used for the atomic counter upsert.
func NewEventService(client *ent.Client, db *stdsql.DB) *EventService {
	return &EventService{client: client, db: db}
}

// Append durably persists one event for a message:
//
//  1. Atomically allocate the next seq from message_counters.
//  2. Re-mint the event ID so its embedded seq matches the durable one.
//  3. Insert the row; the unique (message_id, seq) index means a
//     duplicate-key error is a counter bug, not a retryable race.
//
// Transient insert failures are retried with exponential backoff
// (100/200/400 ms). Returns the event as persisted.
func (s *EventService) Append(httpCtx context.Context, messageID, chatID string, evt streaming.Event) (streaming.Event, error) {
	if messageID == "" {
		return streaming.Event{}, NewValidationError("message_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seq, err := s.allocateSeq(ctx, messageID)
	if err != nil {
		return streaming.Event{}, fmt.Errorf("failed to allocate seq for message %s: %w", messageID, err)
	}

	evt.ID = streaming.MintEventID(seq)
	evt.MessageID = messageID
	evt.ChatID = chatID
	if evt.TS.IsZero() {
		evt.TS = time.Now().UTC()
	}

	payload, err := eventToPayload(evt)
	if err != nil {
		return streaming.Event{}, err
	}

	backoff := appendBaseBackoff
	for attempt := 1; ; attempt++ {
		err = s.client.MessageEvent.Create().
			SetID(evt.ID).
			SetMessageID(messageID).
			SetChatID(chatID).
			SetSeq(seq).
			SetType(string(evt.Type)).
			SetTs(evt.TS).
			SetPayload(payload).
			Exec(ctx)
		if err == nil {
			return evt, nil
		}

		if isDuplicateKey(err) {
			// The counter handed out the same seq twice; retrying
			// would only mask the bug.
			return streaming.Event{}, fmt.Errorf("duplicate seq %d for message %s (counter bug): %w", seq, messageID, err)
		}
		if attempt >= appendAttempts {
			return streaming.Event{}, fmt.Errorf("failed to persist event after %d attempts: %w", attempt, err)
		}

		slog.Warn("Event insert failed, retrying",
			"message_id", messageID, "seq", seq, "attempt", attempt, "error", err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return streaming.Event{}, fmt.Errorf("event persist cancelled: %w", ctx.Err())
		}
		backoff *= 2
	}
}

// allocateSeq atomically increments the message's counter and returns the
// allocated seq. next_seq is read post-increment so the first allocation
// yields 0; application code never read-modify-writes the counter.
func (s *EventService) allocateSeq(ctx context.Context, messageID string) (int64, error) {
	var nextSeq int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO message_counters (message_id, next_seq) VALUES ($1, 1)
		 ON CONFLICT (message_id) DO UPDATE SET next_seq = message_counters.next_seq + 1
		 RETURNING next_seq`,
		messageID,
	).Scan(&nextSeq)
	if err != nil {
		return 0, err
	}
	return nextSeq - 1, nil
}

// ListEvents returns a message's events with seq greater than the seq
// embedded in sinceID, in seq order. An empty sinceID reads from the
// beginning; a malformed one logs a warning and also reads from the
// beginning rather than failing the stream.
func (s *EventService) ListEvents(ctx context.Context, messageID, sinceID string, limit int) ([]streaming.Event, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sinceSeq := int64(-1)
	if sinceID != "" {
		seq, err := streaming.ParseEventSeq(sinceID)
		if err != nil {
			slog.Warn("Malformed resume cursor, replaying from the beginning",
				"message_id", messageID, "since_id", sinceID)
		} else {
			sinceSeq = seq
		}
	}

	rows, err := s.client.MessageEvent.Query().
		Where(
			messageevent.MessageIDEQ(messageID),
			messageevent.SeqGT(sinceSeq),
		).
		Order(ent.Asc(messageevent.FieldSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]streaming.Event, 0, len(rows))
	for _, row := range rows {
		evt, err := payloadToEvent(row.Payload)
		if err != nil {
			slog.Error("Skipping undecodable event row", "event_id", row.ID, "error", err)
			continue
		}
		events = append(events, evt)
	}
	return events, nil
}

// CountEvents returns the number of persisted events for a message
func (s *EventService) CountEvents(ctx context.Context, messageID string) (int, error) {
	n, err := s.client.MessageEvent.Query().
		Where(messageevent.MessageIDEQ(messageID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// DeleteEvents removes a message's event log and counter
func (s *EventService) DeleteEvents(httpCtx context.Context, messageID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.MessageEvent.Delete().
		Where(messageevent.MessageIDEQ(messageID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}

	_, err = s.client.MessageCounter.Delete().
		Where(messagecounter.IDEQ(messageID)).
		Exec(ctx)
	if err != nil {
		return n, fmt.Errorf("failed to delete message counter: %w", err)
	}

	return n, nil
}

// PurgeExpiredEvents removes events older than the TTL. A zero TTL
// disables the purge.
func (s *EventService) PurgeExpiredEvents(_ context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-ttl)
	n, err := s.client.MessageEvent.Delete().
		Where(messageevent.TsLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired events: %w", err)
	}
	return n, nil
}

// eventToPayload round-trips the event through JSON so the stored payload
// is exactly the wire shape watchers will deliver.
func eventToPayload(evt streaming.Event) (map[string]interface{}, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to build event payload: %w", err)
	}
	return payload, nil
}

func payloadToEvent(payload map[string]interface{}) (streaming.Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return streaming.Event{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	var evt streaming.Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return streaming.Event{}, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return evt, nil
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		ent.IsConstraintError(err)
}
