// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: "New Chat"},
		{Name: "tender_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chat_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[3]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chats_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[9]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[9], ChatMessagesColumns[7]},
			},
		},
	}
	// MessageCountersColumns holds the columns for the "message_counters" table.
	MessageCountersColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "next_seq", Type: field.TypeInt64, Default: 0},
	}
	// MessageCountersTable holds the schema information for the "message_counters" table.
	MessageCountersTable = &schema.Table{
		Name:       "message_counters",
		Columns:    MessageCountersColumns,
		PrimaryKey: []*schema.Column{MessageCountersColumns[0]},
	}
	// MessageEventsColumns holds the columns for the "message_events" table.
	MessageEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "type", Type: field.TypeString},
		{Name: "ts", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON},
	}
	// MessageEventsTable holds the schema information for the "message_events" table.
	MessageEventsTable = &schema.Table{
		Name:       "message_events",
		Columns:    MessageEventsColumns,
		PrimaryKey: []*schema.Column{MessageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageevent_message_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MessageEventsColumns[1], MessageEventsColumns[3]},
			},
			{
				Name:    "messageevent_chat_id_ts",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[2], MessageEventsColumns[5]},
			},
			{
				Name:    "messageevent_ts",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatsTable,
		ChatMessagesTable,
		MessageCountersTable,
		MessageEventsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatsTable
}
