// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStudentID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSubjectName, v))
}

// TotalChapters applies equality check predicate on the "total_chapters" field. It's identical to TotalChaptersEQ.
func TotalChapters(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalChapters, v))
}

// PercentComplete applies equality check predicate on the "percent_complete" field. It's identical to PercentCompleteEQ.
func PercentComplete(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPercentComplete, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldSubjectName, v))
}

// TotalChaptersEQ applies the EQ predicate on the "total_chapters" field.
func TotalChaptersEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalChapters, v))
}

// TotalChaptersNEQ applies the NEQ predicate on the "total_chapters" field.
func TotalChaptersNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalChapters, v))
}

// TotalChaptersIn applies the In predicate on the "total_chapters" field.
func TotalChaptersIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalChapters, vs...))
}

// TotalChaptersNotIn applies the NotIn predicate on the "total_chapters" field.
func TotalChaptersNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalChapters, vs...))
}

// TotalChaptersGT applies the GT predicate on the "total_chapters" field.
func TotalChaptersGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalChapters, v))
}

// TotalChaptersGTE applies the GTE predicate on the "total_chapters" field.
func TotalChaptersGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalChapters, v))
}

// TotalChaptersLT applies the LT predicate on the "total_chapters" field.
func TotalChaptersLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalChapters, v))
}

// TotalChaptersLTE applies the LTE predicate on the "total_chapters" field.
func TotalChaptersLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalChapters, v))
}

// CompletedChapterIdsIsNil applies the IsNil predicate on the "completed_chapter_ids" field.
func CompletedChapterIdsIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldCompletedChapterIds))
}

// CompletedChapterIdsNotNil applies the NotNil predicate on the "completed_chapter_ids" field.
func CompletedChapterIdsNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldCompletedChapterIds))
}

// NotesViewedChapterIdsIsNil applies the IsNil predicate on the "notes_viewed_chapter_ids" field.
func NotesViewedChapterIdsIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldNotesViewedChapterIds))
}

// NotesViewedChapterIdsNotNil applies the NotNil predicate on the "notes_viewed_chapter_ids" field.
func NotesViewedChapterIdsNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldNotesViewedChapterIds))
}

// VideosViewedChapterIdsIsNil applies the IsNil predicate on the "videos_viewed_chapter_ids" field.
func VideosViewedChapterIdsIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldVideosViewedChapterIds))
}

// VideosViewedChapterIdsNotNil applies the NotNil predicate on the "videos_viewed_chapter_ids" field.
func VideosViewedChapterIdsNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldVideosViewedChapterIds))
}

// PercentCompleteEQ applies the EQ predicate on the "percent_complete" field.
func PercentCompleteEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPercentComplete, v))
}

// PercentCompleteNEQ applies the NEQ predicate on the "percent_complete" field.
func PercentCompleteNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldPercentComplete, v))
}

// PercentCompleteIn applies the In predicate on the "percent_complete" field.
func PercentCompleteIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldPercentComplete, vs...))
}

// PercentCompleteNotIn applies the NotIn predicate on the "percent_complete" field.
func PercentCompleteNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldPercentComplete, vs...))
}

// PercentCompleteGT applies the GT predicate on the "percent_complete" field.
func PercentCompleteGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldPercentComplete, v))
}

// PercentCompleteGTE applies the GTE predicate on the "percent_complete" field.
func PercentCompleteGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldPercentComplete, v))
}

// PercentCompleteLT applies the LT predicate on the "percent_complete" field.
func PercentCompleteLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldPercentComplete, v))
}

// PercentCompleteLTE applies the LTE predicate on the "percent_complete" field.
func PercentCompleteLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldPercentComplete, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
