// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/EAGLE1309/placecraft-sub002/ent/chapter"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// ChapterUpdate is the builder for updating Chapter entities.
type ChapterUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterMutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdate) Where(ps ...predicate.Chapter) *ChapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverview sets the "overview" field.
func (_u *ChapterUpdate) SetOverview(v string) *ChapterUpdate {
	_u.mutation.SetOverview(v)
	return _u
}

// SetNillableOverview sets the "overview" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableOverview(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetOverview(*v)
	}
	return _u
}

// ClearOverview clears the value of the "overview" field.
func (_u *ChapterUpdate) ClearOverview() *ChapterUpdate {
	_u.mutation.ClearOverview()
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *ChapterUpdate) SetConcepts(v []types.Concept) *ChapterUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *ChapterUpdate) AppendConcepts(v []types.Concept) *ChapterUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *ChapterUpdate) ClearConcepts() *ChapterUpdate {
	_u.mutation.ClearConcepts()
	return _u
}

// SetContentGeneratedAt sets the "content_generated_at" field.
func (_u *ChapterUpdate) SetContentGeneratedAt(v time.Time) *ChapterUpdate {
	_u.mutation.SetContentGeneratedAt(v)
	return _u
}

// SetNillableContentGeneratedAt sets the "content_generated_at" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableContentGeneratedAt(v *time.Time) *ChapterUpdate {
	if v != nil {
		_u.SetContentGeneratedAt(*v)
	}
	return _u
}

// ClearContentGeneratedAt clears the value of the "content_generated_at" field.
func (_u *ChapterUpdate) ClearContentGeneratedAt() *ChapterUpdate {
	_u.mutation.ClearContentGeneratedAt()
	return _u
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdate) Mutation() *ChapterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Overview(); ok {
		_spec.SetField(chapter.FieldOverview, field.TypeString, value)
	}
	if _u.mutation.OverviewCleared() {
		_spec.ClearField(chapter.FieldOverview, field.TypeString)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(chapter.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(chapter.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentGeneratedAt(); ok {
		_spec.SetField(chapter.FieldContentGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.ContentGeneratedAtCleared() {
		_spec.ClearField(chapter.FieldContentGeneratedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterUpdateOne is the builder for updating a single Chapter entity.
type ChapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterMutation
}

// SetOverview sets the "overview" field.
func (_u *ChapterUpdateOne) SetOverview(v string) *ChapterUpdateOne {
	_u.mutation.SetOverview(v)
	return _u
}

// SetNillableOverview sets the "overview" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableOverview(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetOverview(*v)
	}
	return _u
}

// ClearOverview clears the value of the "overview" field.
func (_u *ChapterUpdateOne) ClearOverview() *ChapterUpdateOne {
	_u.mutation.ClearOverview()
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *ChapterUpdateOne) SetConcepts(v []types.Concept) *ChapterUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *ChapterUpdateOne) AppendConcepts(v []types.Concept) *ChapterUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *ChapterUpdateOne) ClearConcepts() *ChapterUpdateOne {
	_u.mutation.ClearConcepts()
	return _u
}

// SetContentGeneratedAt sets the "content_generated_at" field.
func (_u *ChapterUpdateOne) SetContentGeneratedAt(v time.Time) *ChapterUpdateOne {
	_u.mutation.SetContentGeneratedAt(v)
	return _u
}

// SetNillableContentGeneratedAt sets the "content_generated_at" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableContentGeneratedAt(v *time.Time) *ChapterUpdateOne {
	if v != nil {
		_u.SetContentGeneratedAt(*v)
	}
	return _u
}

// ClearContentGeneratedAt clears the value of the "content_generated_at" field.
func (_u *ChapterUpdateOne) ClearContentGeneratedAt() *ChapterUpdateOne {
	_u.mutation.ClearContentGeneratedAt()
	return _u
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdateOne) Mutation() *ChapterMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdateOne) Where(ps ...predicate.Chapter) *ChapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterUpdateOne) Select(field string, fields ...string) *ChapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chapter entity.
func (_u *ChapterUpdateOne) Save(ctx context.Context) (*Chapter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdateOne) SaveX(ctx context.Context) *Chapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChapterUpdateOne) sqlSave(ctx context.Context) (_node *Chapter, err error) {
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for _, f := range fields {
			if !chapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Overview(); ok {
		_spec.SetField(chapter.FieldOverview, field.TypeString, value)
	}
	if _u.mutation.OverviewCleared() {
		_spec.ClearField(chapter.FieldOverview, field.TypeString)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(chapter.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(chapter.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentGeneratedAt(); ok {
		_spec.SetField(chapter.FieldContentGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.ContentGeneratedAtCleared() {
		_spec.ClearField(chapter.FieldContentGeneratedAt, field.TypeTime)
	}
	_node = &Chapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
