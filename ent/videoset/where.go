// Code generated by ent, DO NOT EDIT.

package videoset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLTE(FieldID, id))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldChapterID, v))
}

// FallbackURL applies equality check predicate on the "fallback_url" field. It's identical to FallbackURLEQ.
func FallbackURL(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldFallbackURL, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldFetchedAt, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDGT applies the GT predicate on the "chapter_id" field.
func ChapterIDGT(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGT(FieldChapterID, v))
}

// ChapterIDGTE applies the GTE predicate on the "chapter_id" field.
func ChapterIDGTE(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGTE(FieldChapterID, v))
}

// ChapterIDLT applies the LT predicate on the "chapter_id" field.
func ChapterIDLT(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLT(FieldChapterID, v))
}

// ChapterIDLTE applies the LTE predicate on the "chapter_id" field.
func ChapterIDLTE(v uuid.UUID) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLTE(FieldChapterID, v))
}

// FallbackURLEQ applies the EQ predicate on the "fallback_url" field.
func FallbackURLEQ(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldFallbackURL, v))
}

// FallbackURLNEQ applies the NEQ predicate on the "fallback_url" field.
func FallbackURLNEQ(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNEQ(FieldFallbackURL, v))
}

// FallbackURLIn applies the In predicate on the "fallback_url" field.
func FallbackURLIn(vs ...string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldIn(FieldFallbackURL, vs...))
}

// FallbackURLNotIn applies the NotIn predicate on the "fallback_url" field.
func FallbackURLNotIn(vs ...string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNotIn(FieldFallbackURL, vs...))
}

// FallbackURLGT applies the GT predicate on the "fallback_url" field.
func FallbackURLGT(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGT(FieldFallbackURL, v))
}

// FallbackURLGTE applies the GTE predicate on the "fallback_url" field.
func FallbackURLGTE(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGTE(FieldFallbackURL, v))
}

// FallbackURLLT applies the LT predicate on the "fallback_url" field.
func FallbackURLLT(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLT(FieldFallbackURL, v))
}

// FallbackURLLTE applies the LTE predicate on the "fallback_url" field.
func FallbackURLLTE(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLTE(FieldFallbackURL, v))
}

// FallbackURLContains applies the Contains predicate on the "fallback_url" field.
func FallbackURLContains(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldContains(FieldFallbackURL, v))
}

// FallbackURLHasPrefix applies the HasPrefix predicate on the "fallback_url" field.
func FallbackURLHasPrefix(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldHasPrefix(FieldFallbackURL, v))
}

// FallbackURLHasSuffix applies the HasSuffix predicate on the "fallback_url" field.
func FallbackURLHasSuffix(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldHasSuffix(FieldFallbackURL, v))
}

// FallbackURLEqualFold applies the EqualFold predicate on the "fallback_url" field.
func FallbackURLEqualFold(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEqualFold(FieldFallbackURL, v))
}

// FallbackURLContainsFold applies the ContainsFold predicate on the "fallback_url" field.
func FallbackURLContainsFold(v string) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldContainsFold(FieldFallbackURL, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.VideoSet {
	return predicate.VideoSet(sql.FieldLTE(FieldFetchedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VideoSet) predicate.VideoSet {
	return predicate.VideoSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VideoSet) predicate.VideoSet {
	return predicate.VideoSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VideoSet) predicate.VideoSet {
	return predicate.VideoSet(sql.NotPredicates(p))
}
