// Code generated by ent, DO NOT EDIT.

package messagecounter

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tendersuite/tenderd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldContainsFold(FieldID, id))
}

// NextSeq applies equality check predicate on the "next_seq" field. It's identical to NextSeqEQ.
func NextSeq(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldEQ(FieldNextSeq, v))
}

// NextSeqEQ applies the EQ predicate on the "next_seq" field.
func NextSeqEQ(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldEQ(FieldNextSeq, v))
}

// NextSeqNEQ applies the NEQ predicate on the "next_seq" field.
func NextSeqNEQ(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldNEQ(FieldNextSeq, v))
}

// NextSeqIn applies the In predicate on the "next_seq" field.
func NextSeqIn(vs ...int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldIn(FieldNextSeq, vs...))
}

// NextSeqNotIn applies the NotIn predicate on the "next_seq" field.
func NextSeqNotIn(vs ...int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldNotIn(FieldNextSeq, vs...))
}

// NextSeqGT applies the GT predicate on the "next_seq" field.
func NextSeqGT(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldGT(FieldNextSeq, v))
}

// NextSeqGTE applies the GTE predicate on the "next_seq" field.
func NextSeqGTE(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldGTE(FieldNextSeq, v))
}

// NextSeqLT applies the LT predicate on the "next_seq" field.
func NextSeqLT(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldLT(FieldNextSeq, v))
}

// NextSeqLTE applies the LTE predicate on the "next_seq" field.
func NextSeqLTE(v int64) predicate.MessageCounter {
	return predicate.MessageCounter(sql.FieldLTE(FieldNextSeq, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageCounter) predicate.MessageCounter {
	return predicate.MessageCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageCounter) predicate.MessageCounter {
	return predicate.MessageCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageCounter) predicate.MessageCounter {
	return predicate.MessageCounter(sql.NotPredicates(p))
}
