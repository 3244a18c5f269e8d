// Code generated by ent, DO NOT EDIT.

package videoset

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the videoset type in the database.
	Label = "video_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// FieldVideos holds the string denoting the videos field in the database.
	FieldVideos = "videos"
	// FieldFallbackURL holds the string denoting the fallback_url field in the database.
	FieldFallbackURL = "fallback_url"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// Table holds the table name of the videoset in the database.
	Table = "video_sets"
)

// Columns holds all SQL columns for videoset fields.
var Columns = []string{
	FieldID,
	FieldChapterID,
	FieldVideos,
	FieldFallbackURL,
	FieldFetchedAt,
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
	// FallbackURLValidator is a validator for the "fallback_url" field. It is called by the builders before save.
	FallbackURLValidator func(string) error
	// DefaultFetchedAt holds the default value on creation for the "fetched_at" field.
	DefaultFetchedAt func() time.Time
)

// OrderOption defines the ordering options for the VideoSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByFallbackURL orders the results by the fallback_url field.
func ByFallbackURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackURL, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}
