// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// MessageCounter is the predicate function for messagecounter builders.
type MessageCounter func(*sql.Selector)

// MessageEvent is the predicate function for messageevent builders.
type MessageEvent func(*sql.Selector)
