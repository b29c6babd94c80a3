// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tendersuite/tenderd/ent/messagecounter"
)

// MessageCounter is the model entity for the MessageCounter schema.
type MessageCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NextSeq holds the value of the "next_seq" field.
	NextSeq      int64 `json:"next_seq,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagecounter.FieldNextSeq:
			values[i] = new(sql.NullInt64)
		case messagecounter.FieldID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageCounter fields.
func (_m *MessageCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagecounter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messagecounter.FieldNextSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_seq", values[i])
			} else if value.Valid {
				_m.NextSeq = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageCounter.
// This includes values selected through modifiers, order, etc.
func (_m *MessageCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageCounter.
// Note that you need to call MessageCounter.Unwrap() before calling this method if this MessageCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageCounter) Update() *MessageCounterUpdateOne {
	return NewMessageCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageCounter) Unwrap() *MessageCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageCounter) String() string {
	var builder strings.Builder
	builder.WriteString("MessageCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("next_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextSeq))
	builder.WriteByte(')')
	return builder.String()
}

// MessageCounters is a parsable slice of MessageCounter.
type MessageCounters []*MessageCounter
