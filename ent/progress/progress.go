// Code generated by ent, DO NOT EDIT.

package progress

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldTotalChapters holds the string denoting the total_chapters field in the database.
	FieldTotalChapters = "total_chapters"
	// FieldCompletedChapterIds holds the string denoting the completed_chapter_ids field in the database.
	FieldCompletedChapterIds = "completed_chapter_ids"
	// FieldNotesViewedChapterIds holds the string denoting the notes_viewed_chapter_ids field in the database.
	FieldNotesViewedChapterIds = "notes_viewed_chapter_ids"
	// FieldVideosViewedChapterIds holds the string denoting the videos_viewed_chapter_ids field in the database.
	FieldVideosViewedChapterIds = "videos_viewed_chapter_ids"
	// FieldPercentComplete holds the string denoting the percent_complete field in the database.
	FieldPercentComplete = "percent_complete"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubjectID,
	FieldSubjectName,
	FieldTotalChapters,
	FieldCompletedChapterIds,
	FieldNotesViewedChapterIds,
	FieldVideosViewedChapterIds,
	FieldPercentComplete,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultSubjectName holds the default value on creation for the "subject_name" field.
	DefaultSubjectName string
	// DefaultTotalChapters holds the default value on creation for the "total_chapters" field.
	DefaultTotalChapters int
	// TotalChaptersValidator is a validator for the "total_chapters" field. It is called by the builders before save.
	TotalChaptersValidator func(int) error
	// DefaultPercentComplete holds the default value on creation for the "percent_complete" field.
	DefaultPercentComplete int
	// PercentCompleteValidator is a validator for the "percent_complete" field. It is called by the builders before save.
	PercentCompleteValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNotStarted is the default value of the Status enum.
const DefaultStatus = StatusNotStarted

// Status values.
const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("progress: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByTotalChapters orders the results by the total_chapters field.
func ByTotalChapters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChapters, opts...).ToFunc()
}

// ByPercentComplete orders the results by the percent_complete field.
func ByPercentComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentComplete, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
