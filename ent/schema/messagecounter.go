package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// MessageCounter holds the schema definition for the MessageCounter entity.
// One row per message; next_seq is only ever touched by the atomic
// upsert-and-return in EventService, never read-modify-written.
type MessageCounter struct {
	ent.Schema
}

// Fields of the MessageCounter.
func (MessageCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.Int64("next_seq").
			Default(0),
	}
}
