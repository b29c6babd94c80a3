package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageEvent holds the schema definition for the MessageEvent entity.
// The durable per-message event log. Rows are append-only: created once by
// the driver's writer, never mutated, optionally purged by TTL retention.
// seq is allocated from MessageCounter and the (message_id, seq) unique
// index makes any duplicate a counter bug rather than a race to tolerate.
type MessageEvent struct {
	ent.Schema
}

// Fields of the MessageEvent.
func (MessageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Monotonic per message, starts at 0, no gaps"),
		field.String("type").
			Immutable(),
		field.Time("ts").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable().
			Comment("Full wire-shape event document (v, type, id, ts, variant fields)"),
	}
}

// Indexes of the MessageEvent.
func (MessageEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Replay and watcher polling
		index.Fields("message_id", "seq").
			Unique(),
		// Chat-level queries
		index.Fields("chat_id", "ts"),
		// TTL purge
		index.Fields("ts"),
	}
}
