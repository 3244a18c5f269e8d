// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// SkillKey applies equality check predicate on the "skill_key" field. It's identical to SkillKeyEQ.
func SkillKey(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSkillKey, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDisplayName, v))
}

// LearningType applies equality check predicate on the "learning_type" field. It's identical to LearningTypeEQ.
func LearningType(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLearningType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// SkillKeyEQ applies the EQ predicate on the "skill_key" field.
func SkillKeyEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSkillKey, v))
}

// SkillKeyNEQ applies the NEQ predicate on the "skill_key" field.
func SkillKeyNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldSkillKey, v))
}

// SkillKeyIn applies the In predicate on the "skill_key" field.
func SkillKeyIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldSkillKey, vs...))
}

// SkillKeyNotIn applies the NotIn predicate on the "skill_key" field.
func SkillKeyNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldSkillKey, vs...))
}

// SkillKeyGT applies the GT predicate on the "skill_key" field.
func SkillKeyGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldSkillKey, v))
}

// SkillKeyGTE applies the GTE predicate on the "skill_key" field.
func SkillKeyGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldSkillKey, v))
}

// SkillKeyLT applies the LT predicate on the "skill_key" field.
func SkillKeyLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldSkillKey, v))
}

// SkillKeyLTE applies the LTE predicate on the "skill_key" field.
func SkillKeyLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldSkillKey, v))
}

// SkillKeyContains applies the Contains predicate on the "skill_key" field.
func SkillKeyContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldSkillKey, v))
}

// SkillKeyHasPrefix applies the HasPrefix predicate on the "skill_key" field.
func SkillKeyHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldSkillKey, v))
}

// SkillKeyHasSuffix applies the HasSuffix predicate on the "skill_key" field.
func SkillKeyHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldSkillKey, v))
}

// SkillKeyEqualFold applies the EqualFold predicate on the "skill_key" field.
func SkillKeyEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldSkillKey, v))
}

// SkillKeyContainsFold applies the ContainsFold predicate on the "skill_key" field.
func SkillKeyContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldSkillKey, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldDisplayName, v))
}

// LearningTypeEQ applies the EQ predicate on the "learning_type" field.
func LearningTypeEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLearningType, v))
}

// LearningTypeNEQ applies the NEQ predicate on the "learning_type" field.
func LearningTypeNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLearningType, v))
}

// LearningTypeIn applies the In predicate on the "learning_type" field.
func LearningTypeIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLearningType, vs...))
}

// LearningTypeNotIn applies the NotIn predicate on the "learning_type" field.
func LearningTypeNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLearningType, vs...))
}

// LearningTypeGT applies the GT predicate on the "learning_type" field.
func LearningTypeGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLearningType, v))
}

// LearningTypeGTE applies the GTE predicate on the "learning_type" field.
func LearningTypeGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLearningType, v))
}

// LearningTypeLT applies the LT predicate on the "learning_type" field.
func LearningTypeLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLearningType, v))
}

// LearningTypeLTE applies the LTE predicate on the "learning_type" field.
func LearningTypeLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLearningType, v))
}

// LearningTypeContains applies the Contains predicate on the "learning_type" field.
func LearningTypeContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldLearningType, v))
}

// LearningTypeHasPrefix applies the HasPrefix predicate on the "learning_type" field.
func LearningTypeHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldLearningType, v))
}

// LearningTypeHasSuffix applies the HasSuffix predicate on the "learning_type" field.
func LearningTypeHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldLearningType, v))
}

// LearningTypeEqualFold applies the EqualFold predicate on the "learning_type" field.
func LearningTypeEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldLearningType, v))
}

// LearningTypeContainsFold applies the ContainsFold predicate on the "learning_type" field.
func LearningTypeContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldLearningType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
