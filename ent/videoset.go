// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/EAGLE1309/placecraft-sub002/ent/videoset"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
	"github.com/google/uuid"
)

// VideoSet is the model entity for the VideoSet schema.
type VideoSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChapterID holds the value of the "chapter_id" field.
	ChapterID uuid.UUID `json:"chapter_id,omitempty"`
	// Ranked results, capped at the service maximum
	Videos []types.Video `json:"videos,omitempty"`
	// Templated search link usable even without stored videos
	FallbackURL string `json:"fallback_url,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VideoSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case videoset.FieldVideos:
			values[i] = new([]byte)
		case videoset.FieldID:
			values[i] = new(sql.NullInt64)
		case videoset.FieldFallbackURL:
			values[i] = new(sql.NullString)
		case videoset.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		case videoset.FieldChapterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VideoSet fields.
func (_m *VideoSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case videoset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case videoset.FieldChapterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value != nil {
				_m.ChapterID = *value
			}
		case videoset.FieldVideos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field videos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Videos); err != nil {
					return fmt.Errorf("unmarshal field videos: %w", err)
				}
			}
		case videoset.FieldFallbackURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_url", values[i])
			} else if value.Valid {
				_m.FallbackURL = value.String
			}
		case videoset.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VideoSet.
// This includes values selected through modifiers, order, etc.
func (_m *VideoSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VideoSet.
// Note that you need to call VideoSet.Unwrap() before calling this method if this VideoSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VideoSet) Update() *VideoSetUpdateOne {
	return NewVideoSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VideoSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VideoSet) Unwrap() *VideoSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VideoSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VideoSet) String() string {
	var builder strings.Builder
	builder.WriteString("VideoSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chapter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterID))
	builder.WriteString(", ")
	builder.WriteString("videos=")
	builder.WriteString(fmt.Sprintf("%v", _m.Videos))
	builder.WriteString(", ")
	builder.WriteString("fallback_url=")
	builder.WriteString(_m.FallbackURL)
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VideoSets is a parsable slice of VideoSet.
type VideoSets []*VideoSet
