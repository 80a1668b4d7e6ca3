// Code generated by ent, DO NOT EDIT.

package member

import (
	"mockview/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldEmail, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldName, v))
}

// JobField applies equality check predicate on the "job_field" field. It's identical to JobFieldEQ.
func JobField(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldJobField, v))
}

// PreferredField applies equality check predicate on the "preferred_field" field. It's identical to PreferredFieldEQ.
func PreferredField(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldPreferredField, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldCreatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Member {
	return predicate.Member(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldEmail, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Member {
	return predicate.Member(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldName, v))
}

// JobFieldEQ applies the EQ predicate on the "job_field" field.
func JobFieldEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldJobField, v))
}

// JobFieldNEQ applies the NEQ predicate on the "job_field" field.
func JobFieldNEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldJobField, v))
}

// JobFieldIn applies the In predicate on the "job_field" field.
func JobFieldIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldJobField, vs...))
}

// JobFieldNotIn applies the NotIn predicate on the "job_field" field.
func JobFieldNotIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldJobField, vs...))
}

// JobFieldGT applies the GT predicate on the "job_field" field.
func JobFieldGT(v string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldJobField, v))
}

// JobFieldGTE applies the GTE predicate on the "job_field" field.
func JobFieldGTE(v string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldJobField, v))
}

// JobFieldLT applies the LT predicate on the "job_field" field.
func JobFieldLT(v string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldJobField, v))
}

// JobFieldLTE applies the LTE predicate on the "job_field" field.
func JobFieldLTE(v string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldJobField, v))
}

// JobFieldContains applies the Contains predicate on the "job_field" field.
func JobFieldContains(v string) predicate.Member {
	return predicate.Member(sql.FieldContains(FieldJobField, v))
}

// JobFieldHasPrefix applies the HasPrefix predicate on the "job_field" field.
func JobFieldHasPrefix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasPrefix(FieldJobField, v))
}

// JobFieldHasSuffix applies the HasSuffix predicate on the "job_field" field.
func JobFieldHasSuffix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasSuffix(FieldJobField, v))
}

// JobFieldEqualFold applies the EqualFold predicate on the "job_field" field.
func JobFieldEqualFold(v string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldJobField, v))
}

// JobFieldContainsFold applies the ContainsFold predicate on the "job_field" field.
func JobFieldContainsFold(v string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldJobField, v))
}

// PreferredFieldEQ applies the EQ predicate on the "preferred_field" field.
func PreferredFieldEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldPreferredField, v))
}

// PreferredFieldNEQ applies the NEQ predicate on the "preferred_field" field.
func PreferredFieldNEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldPreferredField, v))
}

// PreferredFieldIn applies the In predicate on the "preferred_field" field.
func PreferredFieldIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldPreferredField, vs...))
}

// PreferredFieldNotIn applies the NotIn predicate on the "preferred_field" field.
func PreferredFieldNotIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldPreferredField, vs...))
}

// PreferredFieldGT applies the GT predicate on the "preferred_field" field.
func PreferredFieldGT(v string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldPreferredField, v))
}

// PreferredFieldGTE applies the GTE predicate on the "preferred_field" field.
func PreferredFieldGTE(v string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldPreferredField, v))
}

// PreferredFieldLT applies the LT predicate on the "preferred_field" field.
func PreferredFieldLT(v string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldPreferredField, v))
}

// PreferredFieldLTE applies the LTE predicate on the "preferred_field" field.
func PreferredFieldLTE(v string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldPreferredField, v))
}

// PreferredFieldContains applies the Contains predicate on the "preferred_field" field.
func PreferredFieldContains(v string) predicate.Member {
	return predicate.Member(sql.FieldContains(FieldPreferredField, v))
}

// PreferredFieldHasPrefix applies the HasPrefix predicate on the "preferred_field" field.
func PreferredFieldHasPrefix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasPrefix(FieldPreferredField, v))
}

// PreferredFieldHasSuffix applies the HasSuffix predicate on the "preferred_field" field.
func PreferredFieldHasSuffix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasSuffix(FieldPreferredField, v))
}

// PreferredFieldEqualFold applies the EqualFold predicate on the "preferred_field" field.
func PreferredFieldEqualFold(v string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldPreferredField, v))
}

// PreferredFieldContainsFold applies the ContainsFold predicate on the "preferred_field" field.
func PreferredFieldContainsFold(v string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldPreferredField, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Member) predicate.Member {
	return predicate.Member(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Member) predicate.Member {
	return predicate.Member(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Member) predicate.Member {
	return predicate.Member(sql.NotPredicates(p))
}
