// Code generated by ent, DO NOT EDIT.

package messagecounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the messagecounter type in the database.
	Label = "message_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldNextSeq holds the string denoting the next_seq field in the database.
	FieldNextSeq = "next_seq"
	// Table holds the table name of the messagecounter in the database.
	Table = "message_counters"
)

// Columns holds all SQL columns for messagecounter fields.
var Columns = []string{
	FieldID,
	FieldNextSeq,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNextSeq holds the default value on creation for the "next_seq" field.
	DefaultNextSeq int64
)

// OrderOption defines the ordering options for the MessageCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNextSeq orders the results by the next_seq field.
func ByNextSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextSeq, opts...).ToFunc()
}
