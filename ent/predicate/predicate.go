// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// VideoSet is the predicate function for videoset builders.
type VideoSet func(*sql.Selector)
