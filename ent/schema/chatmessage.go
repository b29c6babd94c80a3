package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// User questions and the assistant answers the agent produces for them.
// The assistant row is created empty and mutated by the driver at its
// lifecycle transitions (processing, completed, failed, interrupted).
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Default(""),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending").
			Comment("Driver-owned lifecycle; user messages stay completed"),
		field.String("error").
			Optional().
			Nillable(),
		field.Int64("processing_time_ms").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Tender pinning on user messages; interrupt state (interrupted, thread_id, interrupt_payload) on assistant messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("messages").
			Field("chat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Chat history order
		index.Fields("chat_id", "created_at"),
	}
}
