// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/EAGLE1309/placecraft-sub002/ent/progress"
	"github.com/google/uuid"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID uuid.UUID `json:"subject_id,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// TotalChapters holds the value of the "total_chapters" field.
	TotalChapters int `json:"total_chapters,omitempty"`
	// CompletedChapterIds holds the value of the "completed_chapter_ids" field.
	CompletedChapterIds []string `json:"completed_chapter_ids,omitempty"`
	// NotesViewedChapterIds holds the value of the "notes_viewed_chapter_ids" field.
	NotesViewedChapterIds []string `json:"notes_viewed_chapter_ids,omitempty"`
	// VideosViewedChapterIds holds the value of the "videos_viewed_chapter_ids" field.
	VideosViewedChapterIds []string `json:"videos_viewed_chapter_ids,omitempty"`
	// PercentComplete holds the value of the "percent_complete" field.
	PercentComplete int `json:"percent_complete,omitempty"`
	// Status holds the value of the "status" field.
	Status progress.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldCompletedChapterIds, progress.FieldNotesViewedChapterIds, progress.FieldVideosViewedChapterIds:
			values[i] = new([]byte)
		case progress.FieldID, progress.FieldTotalChapters, progress.FieldPercentComplete:
			values[i] = new(sql.NullInt64)
		case progress.FieldStudentID, progress.FieldSubjectName, progress.FieldStatus:
			values[i] = new(sql.NullString)
		case progress.FieldStartedAt, progress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case progress.FieldSubjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case progress.FieldSubjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value != nil {
				_m.SubjectID = *value
			}
		case progress.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case progress.FieldTotalChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chapters", values[i])
			} else if value.Valid {
				_m.TotalChapters = int(value.Int64)
			}
		case progress.FieldCompletedChapterIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_chapter_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedChapterIds); err != nil {
					return fmt.Errorf("unmarshal field completed_chapter_ids: %w", err)
				}
			}
		case progress.FieldNotesViewedChapterIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notes_viewed_chapter_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotesViewedChapterIds); err != nil {
					return fmt.Errorf("unmarshal field notes_viewed_chapter_ids: %w", err)
				}
			}
		case progress.FieldVideosViewedChapterIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field videos_viewed_chapter_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VideosViewedChapterIds); err != nil {
					return fmt.Errorf("unmarshal field videos_viewed_chapter_ids: %w", err)
				}
			}
		case progress.FieldPercentComplete:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percent_complete", values[i])
			} else if value.Valid {
				_m.PercentComplete = int(value.Int64)
			}
		case progress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = progress.Status(value.String)
			}
		case progress.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case progress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("total_chapters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChapters))
	builder.WriteString(", ")
	builder.WriteString("completed_chapter_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedChapterIds))
	builder.WriteString(", ")
	builder.WriteString("notes_viewed_chapter_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotesViewedChapterIds))
	builder.WriteString(", ")
	builder.WriteString("videos_viewed_chapter_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideosViewedChapterIds))
	builder.WriteString(", ")
	builder.WriteString("percent_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.PercentComplete))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
